package curriculum

import (
	"fmt"
	"strings"

	"github.com/abhisek/factdrill/internal/factgen"
)

// validateCurricula performs all structural checks on the given curricula.
// Returns a combined error describing all problems found, or nil if valid.
func validateCurricula(curricula []Curriculum) error {
	var errs []string

	if len(curricula) == 0 {
		errs = append(errs, "no curricula defined")
	}

	keySet := make(map[Key]bool, len(curricula))
	unitSet := make(map[string]Key)

	for _, c := range curricula {
		if c.Key == "" {
			errs = append(errs, "curriculum with empty key")
		}
		if keySet[c.Key] {
			errs = append(errs, fmt.Sprintf("duplicate curriculum key: %q", c.Key))
		}
		keySet[c.Key] = true

		if len(c.Units) == 0 {
			errs = append(errs, fmt.Sprintf("curriculum %q has no units", c.Key))
		}

		for _, u := range c.Units {
			if u.ID == "" {
				errs = append(errs, fmt.Sprintf("curriculum %q has a unit with empty ID", c.Key))
				continue
			}
			if owner, dup := unitSet[u.ID]; dup {
				errs = append(errs, fmt.Sprintf("duplicate unit ID %q (in %q and %q)", u.ID, owner, c.Key))
			}
			unitSet[u.ID] = c.Key

			if u.Title == "" {
				errs = append(errs, fmt.Sprintf("unit %q has no title", u.ID))
			}
			if u.Build == nil {
				errs = append(errs, fmt.Sprintf("unit %q has no recipe", u.ID))
				continue
			}
			for _, f := range u.Build() {
				if msg := checkFact(f); msg != "" {
					errs = append(errs, fmt.Sprintf("unit %q: %v: %s", u.ID, f, msg))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// checkFact returns a description of the first invariant f breaks, or "".
func checkFact(f factgen.Fact) string {
	if f.A < 0 || f.B < 0 {
		return "negative operand"
	}
	if f.Answer != factgen.NewFact(f.A, f.B, f.Op).Answer {
		return "answer does not match operands"
	}
	if f.Answer < 0 {
		return "negative answer"
	}
	if f.Op == factgen.Add && f.Answer > factgen.MaxSum {
		return fmt.Sprintf("sum above %d", factgen.MaxSum)
	}
	return ""
}
