package gen

import (
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// Eligible reports whether a candidate's conditions admit the snapshot.
// The base chance is ignored here; it is consumed by the probabilistic
// stages. A range naming an unknown snapshot field is treated as
// satisfied and reported as a data-quality warning.
func Eligible(c catalog.Conditions, s world.EnvironmentalSnapshot, warn WarnFunc) bool {
	if len(c.SoilTypes) > 0 {
		found := false
		for _, soil := range c.SoilTypes {
			if soil == s.SoilType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for field, r := range c.Ranges {
		v, ok := s.Field(field)
		if !ok {
			warnf(warn, "spawn condition references unknown field %q, skipping", field)
			continue
		}
		if r.Min == nil && r.Max == nil {
			warnf(warn, "spawn condition on %q has no bounds, skipping", field)
			continue
		}
		if r.Min != nil && v < *r.Min {
			return false
		}
		if r.Max != nil && v > *r.Max {
			return false
		}
	}
	return true
}
