package schedulers

// PeriodicRand wraps another KeySchedule, periodically requesting a random
// injection instead of deferring to it. It can be layered in front of any other
// scheduler (including another PeriodicRand) without disturbing that scheduler's own
// rotation.
//
// For example, with key "ABCDEFG" and PeriodicRand{Period: 4, Start: 1, Overwrite:
// false} wrapping RepeatingKey, the effective keystream is
// "A_BCD_EFG_ABC_DEF_GAB_CDE_FG" repeating, where "_" is a random injection.
type PeriodicRand struct {
	// Period is the distance, in output positions, from one random injection to
	// the next.
	Period int
	// Start is the index of the first random injection.
	Start int
	// Overwrite selects whether the random injection replaces a key character
	// (true) or is inserted alongside the wrapped schedule's normal rotation
	// (false).
	Overwrite bool
	// Inner is the wrapped schedule. If nil, PeriodicRand wraps RepeatingKey by
	// default.
	Inner KeySchedule
}

func (p PeriodicRand) randomAt(index int) bool {
	return index >= p.Start && (index-p.Start)%p.Period == 0
}

func (p PeriodicRand) insertionsDone(index int) int {
	num := 0
	if index > p.Start {
		num = (index - p.Start) / p.Period
		num++
	}
	return num
}

// Schedule implements KeySchedule.
func (p PeriodicRand) Schedule(index, keyLength, plaintextLength int) NextKey {
	inner := p.Inner
	if inner == nil {
		inner = RepeatingKey{}
	}

	if p.randomAt(index) {
		return RandomInjection
	}

	if !p.Overwrite {
		index -= p.insertionsDone(index)
	}

	return inner.Schedule(index, keyLength, plaintextLength)
}
