package curriculum

import "github.com/abhisek/factdrill/internal/factgen"

// Key identifies a practice track.
type Key string

const (
	KeyAddition    Key = "addition"
	KeySubtraction Key = "subtraction"
)

// AllKeys returns the curriculum keys in display order.
func AllKeys() []Key {
	return []Key{KeyAddition, KeySubtraction}
}

// DisplayName returns a human-readable name for a curriculum key.
func DisplayName(k Key) string {
	switch k {
	case KeyAddition:
		return "Addition"
	case KeySubtraction:
		return "Subtraction"
	default:
		return string(k)
	}
}

// Unit is a named practice set with its own fact recipe.
type Unit struct {
	ID          string
	Title       string
	Focus       string
	Description string
	Build       factgen.Recipe
}

// Facts runs the unit's recipe. A unit without a recipe has no facts.
func (u Unit) Facts() []factgen.Fact {
	if u.Build == nil {
		return nil
	}
	return u.Build()
}

// Curriculum is an ordered sequence of units.
type Curriculum struct {
	Key   Key
	Name  string
	Units []Unit
}

// Unit returns the unit with the given id.
func (c *Curriculum) Unit(id string) (*Unit, bool) {
	for i := range c.Units {
		if c.Units[i].ID == id {
			return &c.Units[i], true
		}
	}
	return nil, false
}
