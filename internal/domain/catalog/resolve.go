package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const nameDistanceLimit = 1

// Resolve matches a spawn reference to a canonical item definition:
// exact id first, then a case-insensitive display-name match across all
// registered languages, then a near-miss name within edit distance 1.
func (r ItemRegistry) Resolve(ref string) (ItemDefinition, bool) {
	if ref == "" {
		return ItemDefinition{}, false
	}
	if d, ok := r[ref]; ok {
		return d, true
	}
	needle := strings.ToLower(strings.TrimSpace(ref))
	ids := make([]string, 0, len(r))
	for id := range r {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	// Exact name match wins over any fuzzy match regardless of scan order.
	bestDist := nameDistanceLimit + 1
	var best ItemDefinition
	var found bool
	for _, id := range ids {
		d := r[id]
		for _, name := range d.Names {
			cand := strings.ToLower(strings.TrimSpace(name))
			if cand == needle {
				return d, true
			}
			dist := levenshtein.ComputeDistance(needle, cand)
			if dist < bestDist {
				bestDist = dist
				best = d
				found = true
			}
		}
	}
	if found && bestDist <= nameDistanceLimit {
		return best, true
	}
	return ItemDefinition{}, false
}
