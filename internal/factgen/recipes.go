package factgen

// MaxSum is the largest answer an addition recipe may produce.
const MaxSum = 20

// teenFloor is the smallest minuend used by the teen subtraction sweep.
const teenFloor = 11

// FixedAddendSweep pairs every base in [min, max] with each addend, keeping
// sums up to MaxSum. With includeReverse the commuted fact follows its
// original unless both operands are equal.
func FixedAddendSweep(addends []int, min, max int, includeReverse bool) []Fact {
	var facts []Fact
	seen := pairSet{}
	for base := min; base <= max; base++ {
		for _, addend := range addends {
			if base+addend > MaxSum {
				continue
			}
			if seen.add(base, addend) {
				facts = append(facts, NewFact(base, addend, Add))
			}
			if includeReverse && base != addend && seen.add(addend, base) {
				facts = append(facts, NewFact(addend, base, Add))
			}
		}
	}
	return facts
}

// PairsMakingTen emits every pair of numbers that sum to ten together with
// its commutation. 5 + 5 appears once.
func PairsMakingTen() []Fact {
	var facts []Fact
	for a := 0; a <= 10; a++ {
		b := 10 - a
		if a > b {
			continue
		}
		facts = append(facts, NewFact(a, b, Add))
		if a != b {
			facts = append(facts, NewFact(b, a, Add))
		}
	}
	return facts
}

// SumsBelow emits each unordered pair a <= b with a+b < limit, smaller
// operand first. With includeReverse the larger-first order follows.
func SumsBelow(limit int, includeReverse bool) []Fact {
	var facts []Fact
	seen := pairSet{}
	for a := 0; a < limit; a++ {
		for b := 0; b < limit; b++ {
			if a+b >= limit {
				continue
			}
			low, high := a, b
			if low > high {
				low, high = high, low
			}
			if !seen.addUnordered(low, high) {
				continue
			}
			facts = append(facts, NewFact(low, high, Add))
			if includeReverse && low != high {
				facts = append(facts, NewFact(high, low, Add))
			}
		}
	}
	return facts
}

// BridgeThroughTen emits sums from 11 to 15 that cross ten, built from a
// first addend in [5, 9] and a second in [4, 9].
func BridgeThroughTen() []Fact {
	var facts []Fact
	for a := 5; a <= 9; a++ {
		for b := 4; b <= 9; b++ {
			sum := a + b
			if a > b || sum < 11 || sum > 15 {
				continue
			}
			facts = append(facts, NewFact(a, b, Add))
			if a != b {
				facts = append(facts, NewFact(b, a, Add))
			}
		}
	}
	return facts
}

// FixedSubtrahendSweep takes each subtrahend away from every minuend in
// [min, max], skipping negative differences.
func FixedSubtrahendSweep(subtrahends []int, min, max int) []Fact {
	var facts []Fact
	for minuend := min; minuend <= max; minuend++ {
		for _, sub := range subtrahends {
			if minuend-sub < 0 {
				continue
			}
			facts = append(facts, NewFact(minuend, sub, Subtract))
		}
	}
	return facts
}

// NeighborSubtraction subtracts the two numbers just below each minuend
// from 2 to 12.
func NeighborSubtraction() []Fact {
	var facts []Fact
	for minuend := 2; minuend <= 12; minuend++ {
		for gap := 1; gap <= 2; gap++ {
			if minuend-gap >= 0 {
				facts = append(facts, NewFact(minuend, minuend-gap, Subtract))
			}
		}
	}
	return facts
}

// TeenSubtractionSweep is FixedSubtrahendSweep over minuends above ten.
func TeenSubtractionSweep(subtrahends []int, min, max int) []Fact {
	if min < teenFloor {
		min = teenFloor
	}
	return FixedSubtrahendSweep(subtrahends, min, max)
}
