package factgen

// pair is an ordered operand pair.
type pair struct {
	first, second int
}

// pairSet tracks which operand pairs a recipe has already emitted.
type pairSet map[pair]struct{}

// add records p and reports whether it was new.
func (s pairSet) add(first, second int) bool {
	p := pair{first, second}
	if _, seen := s[p]; seen {
		return false
	}
	s[p] = struct{}{}
	return true
}

// addUnordered records the pair regardless of operand order.
func (s pairSet) addUnordered(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return s.add(a, b)
}
