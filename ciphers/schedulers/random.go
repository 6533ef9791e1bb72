package schedulers

import "github.com/larkspur-labs/polycrack/prng"

// BaseKind names one of the four non-composable schedulers, for bookkeeping by
// callers that need to report which base scheduler a random configuration used
// (e.g. the worker pool's per-scheduler accuracy breakdown).
type BaseKind int

const (
	BaseAab BaseKind = iota
	BaseLengthMod
	BaseOffsetReverse
	BaseRepeatingKey
)

// String returns a human-readable name for the base scheduler kind.
func (k BaseKind) String() string {
	switch k {
	case BaseAab:
		return "aab"
	case BaseLengthMod:
		return "lengthmod"
	case BaseOffsetReverse:
		return "offsetreverse"
	case BaseRepeatingKey:
		return "repeatingkey"
	default:
		return "unknown"
	}
}

// RandomBase picks one of the four base schedulers uniformly at random, deriving
// any scheduler-specific parameters from rng, and returns both the scheduler and a
// tag identifying which kind was chosen.
func RandomBase(rng *prng.Rng) (KeySchedule, BaseKind) {
	switch rng.Choose(4) {
	case 0:
		return Aab{
			NumChars: int(rng.Next() % 32),
			NumReps:  int(rng.Next() % 8),
			Offset:   int(rng.Next() % 8),
		}, BaseAab
	case 1:
		return LengthMod{}, BaseLengthMod
	case 2:
		return OffsetReverse{Offset: int(rng.Next() % 17)}, BaseOffsetReverse
	default:
		return RepeatingKey{}, BaseRepeatingKey
	}
}

// RandomPeriodicRand builds a PeriodicRand layer with scheduler-recoverable
// parameters: a period of at least 32 (so the cracker has a realistic chance of
// recovering the underlying key), a start anywhere in [0, 32), and a random choice
// of overwrite vs. insert semantics. Inner is left nil; callers compose layers by
// setting it explicitly.
func RandomPeriodicRand(rng *prng.Rng) PeriodicRand {
	return PeriodicRand{
		Period:    32 + int(rng.Next()%32),
		Start:     int(rng.Next() % 32),
		Overwrite: rng.Next()&1 == 0,
	}
}
