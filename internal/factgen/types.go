package factgen

import "fmt"

// Operator is the arithmetic operation of a fact.
type Operator int

const (
	Add Operator = iota
	Subtract
)

// String returns the operator symbol used in prompts.
func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	default:
		return "?"
	}
}

// Fact is a single arithmetic question with a fixed correct answer.
// Facts are values; build them with NewFact so Answer always agrees with
// the operands.
type Fact struct {
	A      int
	B      int
	Op     Operator
	Answer int
}

// NewFact builds a fact and computes its answer.
func NewFact(a, b int, op Operator) Fact {
	f := Fact{A: a, B: b, Op: op}
	switch op {
	case Add:
		f.Answer = a + b
	case Subtract:
		f.Answer = a - b
	}
	return f
}

// Prompt renders the question without its answer, e.g. "9 - 4".
func (f Fact) Prompt() string {
	return fmt.Sprintf("%d %s %d", f.A, f.Op, f.B)
}

// String renders the fact with its answer, e.g. "9 - 4 = 5".
func (f Fact) String() string {
	return fmt.Sprintf("%s = %d", f.Prompt(), f.Answer)
}

// Check reports whether n is the correct answer.
func (f Fact) Check(n int) bool {
	return n == f.Answer
}

// Recipe produces the ordered fact list of a curriculum unit.
type Recipe func() []Fact
