package mascot

import (
	"math"
	"math/rand/v2"
)

// Rand is the random source behind every draw the machine makes. Float64
// must return values in [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source private to one mascot.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Range is a half-open millisecond range [Min, Max).
type Range struct {
	Min float64
	Max float64
}

// Sample draws a value from the range. A degenerate range yields Min.
func (r Range) Sample(rng Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	v := r.Min + rng.Float64()*(r.Max-r.Min)
	if v >= r.Max {
		// guard against sources returning exactly 1
		v = math.Nextafter(r.Max, r.Min)
	}
	return v
}

// Contains reports whether v lies in [Min, Max), or equals Min for a
// degenerate range.
func (r Range) Contains(v float64) bool {
	if r.Max <= r.Min {
		return v == r.Min
	}
	return v >= r.Min && v < r.Max
}

func pick[T any](rng Rand, items []T) T {
	i := int(rng.Float64() * float64(len(items)))
	if i >= len(items) {
		i = len(items) - 1
	}
	if i < 0 {
		i = 0
	}
	return items[i]
}

// validElapsed filters out tick durations that can arise from host
// scheduler races: negative, NaN or infinite values.
func validElapsed(ms float64) bool {
	return ms >= 0 && !math.IsInf(ms, 1)
}
