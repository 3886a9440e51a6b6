package gen

import (
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// WarnFunc receives data-quality diagnostics. Defects in content data
// never abort generation; they are skipped and reported here.
type WarnFunc func(format string, args ...any)

func warnf(w WarnFunc, format string, args ...any) {
	if w != nil {
		w(format, args...)
	}
}

// Softcap damps multipliers above 1 so a large spawn multiplier cannot
// drive chances to saturation. Identity for m <= 1, monotonic, and
// always <= m.
func Softcap(m float64) float64 {
	if m <= 1 {
		return m
	}
	return m / (1 + (m-1)*SoftcapK)
}

func Clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(0, 1, v)
}

// ResourceScore is the [0,1] composite S biasing spawn rates toward
// environmentally rich chunks: vegetation and moisture up, human,
// danger and predator presence down.
func ResourceScore(s world.EnvironmentalSnapshot) float64 {
	veg := Clamp01(s.VegetationDensity / 100)
	moist := Clamp01(s.Moisture / 100)
	human := Clamp01(s.HumanPresence / 100)
	danger := Clamp01(s.DangerLevel / 100)
	pred := Clamp01(s.PredatorPresence / 100)
	return (veg + moist + (1 - human) + (1 - danger) + (1 - pred)) / 5
}

// weightedPick draws an index with probability proportional to its
// weight. Non-positive totals fall back to a uniform draw; an empty
// slice yields -1.
func weightedPick(rng *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	target := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}
