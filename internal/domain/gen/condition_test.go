package gen

import (
	"strings"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func f64(v float64) *float64 { return &v }

func TestEligible_EmptyConditions(t *testing.T) {
	if !Eligible(catalog.Conditions{}, world.EnvironmentalSnapshot{}, nil) {
		t.Fatal("empty conditions should always be eligible")
	}
}

func TestEligible_NumericRanges(t *testing.T) {
	snap := world.EnvironmentalSnapshot{Moisture: 55, Temperature: 20}
	cases := []struct {
		name string
		cond catalog.Conditions
		want bool
	}{
		{"inside range", catalog.Conditions{Ranges: map[string]catalog.FieldRange{"moisture": {Min: f64(40), Max: f64(70)}}}, true},
		{"below min", catalog.Conditions{Ranges: map[string]catalog.FieldRange{"moisture": {Min: f64(60)}}}, false},
		{"above max", catalog.Conditions{Ranges: map[string]catalog.FieldRange{"temperature": {Max: f64(10)}}}, false},
		{"open min only", catalog.Conditions{Ranges: map[string]catalog.FieldRange{"temperature": {Min: f64(15)}}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Eligible(c.cond, snap, nil); got != c.want {
				t.Fatalf("Eligible = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEligible_SoilMembership(t *testing.T) {
	snap := world.EnvironmentalSnapshot{SoilType: world.SoilPeat}
	ok := catalog.Conditions{SoilTypes: []world.SoilType{world.SoilLoam, world.SoilPeat}}
	if !Eligible(ok, snap, nil) {
		t.Fatal("soil in allow-list should be eligible")
	}
	no := catalog.Conditions{SoilTypes: []world.SoilType{world.SoilSand}}
	if Eligible(no, snap, nil) {
		t.Fatal("soil outside allow-list should not be eligible")
	}
}

func TestEligible_UnknownFieldSkippedWithWarning(t *testing.T) {
	var warned []string
	warn := func(format string, args ...any) {
		warned = append(warned, format)
	}
	cond := catalog.Conditions{Ranges: map[string]catalog.FieldRange{"terrain": {Min: f64(1)}}}
	if !Eligible(cond, world.EnvironmentalSnapshot{}, warn) {
		t.Fatal("unknown field must be treated as satisfied")
	}
	if len(warned) != 1 || !strings.Contains(warned[0], "unknown field") {
		t.Fatalf("expected one unknown-field warning, got %v", warned)
	}
}

func TestEligible_BoundlessRangeSkipped(t *testing.T) {
	cond := catalog.Conditions{Ranges: map[string]catalog.FieldRange{"moisture": {}}}
	if !Eligible(cond, world.EnvironmentalSnapshot{Moisture: 5}, nil) {
		t.Fatal("a range with no bounds must be treated as satisfied")
	}
}

func TestEligible_Deterministic(t *testing.T) {
	snap := world.EnvironmentalSnapshot{Moisture: 55, SoilType: world.SoilLoam}
	cond := catalog.Conditions{
		SoilTypes: []world.SoilType{world.SoilLoam},
		Ranges: map[string]catalog.FieldRange{
			"moisture":  {Min: f64(40)},
			"elevation": {Max: f64(90)},
		},
	}
	first := Eligible(cond, snap, nil)
	for i := 0; i < 50; i++ {
		if Eligible(cond, snap, nil) != first {
			t.Fatal("Eligible must be deterministic for identical inputs")
		}
	}
}
