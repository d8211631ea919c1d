package curriculum

import "fmt"

// Catalog indexes the compiled-in curricula.
type Catalog struct {
	order []Key
	byKey map[Key]*Curriculum
	owner map[string]Key
}

// defaultCatalog is the package-level catalog built from seed data in init().
var defaultCatalog *Catalog

func init() {
	c, err := New(seedCurricula()...)
	if err != nil {
		panic(fmt.Sprintf("curriculum: invalid seed data: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New validates the curricula and builds a catalog over them.
func New(curricula ...Curriculum) (*Catalog, error) {
	if err := validateCurricula(curricula); err != nil {
		return nil, err
	}

	c := &Catalog{
		byKey: make(map[Key]*Curriculum, len(curricula)),
		owner: make(map[string]Key),
	}
	for i := range curricula {
		cur := curricula[i]
		c.order = append(c.order, cur.Key)
		c.byKey[cur.Key] = &cur
		for _, u := range cur.Units {
			c.owner[u.ID] = cur.Key
		}
	}
	return c, nil
}

// Keys returns the curriculum keys in catalog order.
func (c *Catalog) Keys() []Key {
	out := make([]Key, len(c.order))
	copy(out, c.order)
	return out
}

// Curriculum looks up a curriculum by key.
func (c *Catalog) Curriculum(k Key) (*Curriculum, bool) {
	cur, ok := c.byKey[k]
	return cur, ok
}

// Unit looks up a unit inside one curriculum.
func (c *Catalog) Unit(k Key, id string) (*Unit, bool) {
	cur, ok := c.byKey[k]
	if !ok {
		return nil, false
	}
	return cur.Unit(id)
}

// FindUnit looks up a unit in any curriculum and reports which one owns it.
func (c *Catalog) FindUnit(id string) (*Unit, Key, bool) {
	k, ok := c.owner[id]
	if !ok {
		return nil, "", false
	}
	u, ok := c.Unit(k, id)
	return u, k, ok
}
