package directory

import (
	"sort"
	"strings"

	"github.com/zyla999/eco-directory/internal/models"
)

// StateFacet is one entry of the state navigation sidebar.
type StateFacet struct {
	StateCode  string `json:"stateCode"`
	StateName  string `json:"stateName"`
	Country    string `json:"country"`
	Slug       string `json:"slug"`
	StoreCount int    `json:"storeCount"`
}

// CategoryFacet pairs a reference category with its active-store count.
type CategoryFacet struct {
	models.Category
	StoreCount int `json:"storeCount"`
}

// StateFacets derives the distinct states present in the active store set,
// with display names, inferred countries, page slugs and counts, sorted by
// display name ascending. Facets are recomputed by full scan on every call;
// the dataset is a few thousand rows at most.
func StateFacets(stores []models.Store) []StateFacet {
	byCode := make(map[string]*StateFacet)
	for _, s := range stores {
		// Online-only stores carry no state and belong to no state page,
		// so they are left out of the facet counts.
		if s.Status != models.StatusActive || s.State == "" {
			continue
		}
		code := strings.ToUpper(s.State)
		facet, ok := byCode[code]
		if !ok {
			facet = &StateFacet{
				StateCode: code,
				StateName: StateName(code),
				Country:   s.Country, // Inferred from whichever store carries the code
				Slug:      StateSlug(code),
			}
			byCode[code] = facet
		}
		facet.StoreCount++
	}

	facets := make([]StateFacet, 0, len(byCode))
	for _, f := range byCode {
		facets = append(facets, *f)
	}
	sort.Slice(facets, func(i, j int) bool {
		return facets[i].StateName < facets[j].StateName
	})
	return facets
}

// CategoryFacets counts active stores per reference category. Every category
// from the reference list is included, zero counts and all, so the sidebar
// always shows the full set.
func CategoryFacets(stores []models.Store, categories []models.Category) []CategoryFacet {
	counts := make(map[string]int)
	for _, s := range stores {
		if s.Status != models.StatusActive {
			continue
		}
		for _, c := range s.Categories {
			counts[c]++
		}
	}

	facets := make([]CategoryFacet, 0, len(categories))
	for _, cat := range categories {
		facets = append(facets, CategoryFacet{Category: cat, StoreCount: counts[cat.ID]})
	}
	return facets
}
