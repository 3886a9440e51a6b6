package gen

import (
	"math/rand"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func TestSoftcap_IdentityBelowOne(t *testing.T) {
	for _, m := range []float64{0, 0.25, 0.5, 0.99, 1} {
		if got := Softcap(m); got != m {
			t.Fatalf("Softcap(%v) = %v, want identity", m, got)
		}
	}
}

func TestSoftcap_MonotonicAndBounded(t *testing.T) {
	prev := -1.0
	for m := 0.0; m <= 10; m += 0.1 {
		got := Softcap(m)
		if got < prev {
			t.Fatalf("Softcap not monotonic at m=%v: %v < %v", m, got, prev)
		}
		if got > m {
			t.Fatalf("Softcap(%v) = %v, want <= m", m, got)
		}
		prev = got
	}
}

func TestSoftcap_DiminishingReturns(t *testing.T) {
	// 2.0 maps to 2/(1+0.4) under k=0.4.
	if got, want := Softcap(2), 2/1.4; got != want {
		t.Fatalf("Softcap(2) = %v, want %v", got, want)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		lo, hi, v, want float64
	}{
		{0, 1, -0.5, 0},
		{0, 1, 0.5, 0.5},
		{0, 1, 1.5, 1},
		{0.01, 0.9, 0, 0.01},
	}
	for _, c := range cases {
		if got := Clamp(c.lo, c.hi, c.v); got != c.want {
			t.Fatalf("Clamp(%v,%v,%v) = %v, want %v", c.lo, c.hi, c.v, got, c.want)
		}
	}
}

func TestResourceScore(t *testing.T) {
	snap := world.EnvironmentalSnapshot{
		VegetationDensity: 70,
		Moisture:          60,
		HumanPresence:     10,
		DangerLevel:       30,
		PredatorPresence:  40,
	}
	if got, want := ResourceScore(snap), 0.7; !closeTo(got, want, 1e-9) {
		t.Fatalf("ResourceScore = %v, want %v", got, want)
	}
}

func TestResourceScore_Bounds(t *testing.T) {
	rich := world.EnvironmentalSnapshot{VegetationDensity: 100, Moisture: 100}
	if got := ResourceScore(rich); got != 1 {
		t.Fatalf("rich score = %v, want 1", got)
	}
	poor := world.EnvironmentalSnapshot{HumanPresence: 100, DangerLevel: 100, PredatorPresence: 100}
	if got := ResourceScore(poor); got != 0 {
		t.Fatalf("poor score = %v, want 0", got)
	}
	// Out-of-range inputs stay inside [0,1].
	wild := world.EnvironmentalSnapshot{VegetationDensity: 500, Moisture: -30, HumanPresence: 900}
	if got := ResourceScore(wild); got < 0 || got > 1 {
		t.Fatalf("wild score = %v, want within [0,1]", got)
	}
}

func TestWeightedPick(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	if got := weightedPick(rng, nil); got != -1 {
		t.Fatalf("empty pick = %d, want -1", got)
	}
	if got := weightedPick(rng, []float64{0, 5, 0}); got != 1 {
		t.Fatalf("single positive weight pick = %d, want 1", got)
	}

	counts := [2]int{}
	for i := 0; i < 10000; i++ {
		counts[weightedPick(rng, []float64{1, 3})]++
	}
	ratio := float64(counts[1]) / 10000
	if ratio < 0.70 || ratio > 0.80 {
		t.Fatalf("weight-3 share = %v, want around 0.75", ratio)
	}
}

func closeTo(got, want, tol float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}
