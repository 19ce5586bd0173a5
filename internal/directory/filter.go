// Package directory implements the query/filter engine behind the public
// store list: narrowing filters, sorting (including "near me" distance sort),
// and the facet aggregations that power the navigation sidebar. Everything
// here is a pure function over a snapshot of store records fetched by the
// caller; the package holds no state and never touches the database.
package directory

import (
	"sort"
	"strings"

	"github.com/zyla999/eco-directory/internal/models"
)

// Sort modes for FilterSpec.Sort.
const (
	SortAZ       = "az" // Alphabetical by name (default)
	SortNewest   = "newest"
	SortFeatured = "featured"
)

// FilterSpec is the set of optional constraints + sort mode for one query.
// Zero values mean "no constraint".
type FilterSpec struct {
	TextQuery     string           // Substring match on name/description/city/state
	Categories    []string         // OR semantics: at least one must match
	States        []string         // Region codes, case-insensitive
	Country       string           // Exact match
	StoreTypes    models.StoreType // Any-of the requested type flags
	WholesaleOnly bool
	DeliveryOnly  bool
	NearPoint     *models.LatLng // When set, re-sorts by distance (overrides Sort)
	Sort          string         // SortAZ / SortNewest / SortFeatured
}

// Filter returns the subset of stores satisfying every constraint in spec,
// in deterministic order. Non-active stores never come back, whatever the
// input contains. An empty result is a normal output, not an error.
func Filter(stores []models.Store, spec FilterSpec) []models.Store {
	// Status gate first: the public query path only ever sees active stores.
	result := make([]models.Store, 0, len(stores))
	for _, s := range stores {
		if s.Status == models.StatusActive {
			result = append(result, s)
		}
	}

	// Narrowing filters. Each is a pure intersection, so their relative
	// order does not change the result set; only the sort must come last.
	if q := strings.ToLower(strings.TrimSpace(spec.TextQuery)); q != "" {
		result = keep(result, func(s models.Store) bool {
			return strings.Contains(strings.ToLower(s.Name), q) ||
				strings.Contains(strings.ToLower(s.Description), q) ||
				strings.Contains(strings.ToLower(s.City), q) ||
				strings.Contains(strings.ToLower(s.State), q)
		})
	}

	if len(spec.Categories) > 0 {
		want := make(map[string]bool, len(spec.Categories))
		for _, c := range spec.Categories {
			want[c] = true
		}
		result = keep(result, func(s models.Store) bool {
			for _, c := range s.Categories {
				if want[c] {
					return true
				}
			}
			return false
		})
	}

	if len(spec.States) > 0 {
		want := make(map[string]bool, len(spec.States))
		for _, st := range spec.States {
			want[strings.ToUpper(st)] = true
		}
		result = keep(result, func(s models.Store) bool {
			return want[strings.ToUpper(s.State)]
		})
	}

	if spec.Country != "" {
		result = keep(result, func(s models.Store) bool {
			return s.Country == spec.Country
		})
	}

	if spec.StoreTypes != 0 {
		result = keep(result, func(s models.Store) bool {
			return s.Type.Has(spec.StoreTypes)
		})
	}

	if spec.WholesaleOnly {
		result = keep(result, func(s models.Store) bool { return s.OffersWholesale })
	}

	if spec.DeliveryOnly {
		result = keep(result, func(s models.Store) bool { return s.OffersLocalDelivery })
	}

	sortStores(result, spec)
	return result
}

func keep(stores []models.Store, match func(models.Store) bool) []models.Store {
	kept := stores[:0]
	for _, s := range stores {
		if match(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

// sortStores orders the result in place. A near-point takes priority over
// the requested sort mode; stores without coordinates go after all stores
// that have them, keeping their prior relative order.
func sortStores(stores []models.Store, spec FilterSpec) {
	if spec.NearPoint != nil {
		p := *spec.NearPoint
		sort.SliceStable(stores, func(i, j int) bool {
			a, b := stores[i].Coordinates, stores[j].Coordinates
			switch {
			case a != nil && b != nil:
				return DistanceKm(p.Lat, p.Lng, a.Lat, a.Lng) <
					DistanceKm(p.Lat, p.Lng, b.Lat, b.Lng)
			case a != nil:
				return true // i has coordinates, j does not
			default:
				return false
			}
		})
		return
	}

	switch spec.Sort {
	case SortNewest:
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].CreatedAt.After(stores[j].CreatedAt)
		})
	case SortFeatured:
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].Featured && !stores[j].Featured
		})
	default: // SortAZ
		sort.SliceStable(stores, func(i, j int) bool {
			return stores[i].Name < stores[j].Name
		})
	}
}
