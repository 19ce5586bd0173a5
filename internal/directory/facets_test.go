package directory

import (
	"testing"

	"github.com/zyla999/eco-directory/internal/models"
)

func stateStore(id, state, country string) models.Store {
	return models.Store{
		ID:      id,
		Name:    id,
		State:   state,
		Country: country,
		Status:  models.StatusActive,
	}
}

func TestStateFacetsCountsSumToActiveTotal(t *testing.T) {
	closed := stateStore("x", "CA", "USA")
	closed.Status = models.StatusClosed

	stores := []models.Store{
		stateStore("1", "CA", "USA"),
		stateStore("2", "CA", "USA"),
		stateStore("3", "NY", "USA"),
		stateStore("4", "ON", "Canada"),
		stateStore("5", "on", "Canada"), // Case-insensitive grouping
		closed,
	}

	facets := StateFacets(stores)

	total := 0
	for _, f := range facets {
		total += f.StoreCount
	}
	if total != 5 {
		t.Fatalf("facet counts sum to %d, expected 5 active stores", total)
	}

	if len(facets) != 3 {
		t.Fatalf("expected 3 distinct states, got %d: %+v", len(facets), facets)
	}
}

func TestStateFacetsNamesSlugsAndOrder(t *testing.T) {
	stores := []models.Store{
		stateStore("1", "ON", "Canada"),
		stateStore("2", "CA", "USA"),
		stateStore("3", "BC", "Canada"),
	}

	facets := StateFacets(stores)

	// Sorted by display name: British Columbia, California, Ontario.
	want := []StateFacet{
		{StateCode: "BC", StateName: "British Columbia", Country: "Canada", Slug: "can-bc", StoreCount: 1},
		{StateCode: "CA", StateName: "California", Country: "USA", Slug: "usa-ca", StoreCount: 1},
		{StateCode: "ON", StateName: "Ontario", Country: "Canada", Slug: "can-on", StoreCount: 1},
	}
	if len(facets) != len(want) {
		t.Fatalf("expected %d facets, got %d", len(want), len(facets))
	}
	for i, w := range want {
		if facets[i] != w {
			t.Fatalf("facet %d: expected %+v, got %+v", i, w, facets[i])
		}
	}
}

func TestStateFacetsUnknownCodePassesThrough(t *testing.T) {
	facets := StateFacets([]models.Store{stateStore("1", "ZZ", "USA")})

	if len(facets) != 1 {
		t.Fatalf("expected 1 facet, got %d", len(facets))
	}
	if facets[0].StateName != "ZZ" {
		t.Fatalf("unknown code should use the raw code as name, got %q", facets[0].StateName)
	}
	if facets[0].Slug != "usa-zz" {
		t.Fatalf("unknown code should default to usa prefix, got %q", facets[0].Slug)
	}
}

func TestStateFacetsSkipStatelessStores(t *testing.T) {
	online := stateStore("shop-online", "", "USA")
	online.Type = models.TypeOnline

	stores := []models.Store{
		stateStore("1", "CA", "USA"),
		online,
	}

	facets := StateFacets(stores)

	if len(facets) != 1 {
		t.Fatalf("expected 1 facet, got %d: %+v", len(facets), facets)
	}
	if facets[0].StateCode != "CA" || facets[0].StoreCount != 1 {
		t.Fatalf("online-only store leaked into state facets: %+v", facets[0])
	}
}

func TestCategoryFacetsIncludeZeroCounts(t *testing.T) {
	categories := []models.Category{
		{ID: "refillery", Name: "Refillery"},
		{ID: "bulk-foods", Name: "Bulk Foods"},
		{ID: "apothecary", Name: "Apothecary"},
	}

	s1 := stateStore("1", "ON", "Canada")
	s1.Categories = []string{"refillery"}
	s2 := stateStore("2", "ON", "Canada")
	s2.Categories = []string{"refillery", "bulk-foods"}
	inactive := stateStore("3", "ON", "Canada")
	inactive.Categories = []string{"apothecary"}
	inactive.Status = models.StatusNeedsReview

	facets := CategoryFacets([]models.Store{s1, s2, inactive}, categories)

	if len(facets) != 3 {
		t.Fatalf("expected the full reference list (3), got %d", len(facets))
	}

	byID := make(map[string]int)
	for _, f := range facets {
		byID[f.ID] = f.StoreCount
	}
	if byID["refillery"] != 2 || byID["bulk-foods"] != 1 {
		t.Fatalf("unexpected counts: %v", byID)
	}
	if byID["apothecary"] != 0 {
		t.Fatalf("category with only inactive stores should count 0, got %d", byID["apothecary"])
	}
}

func TestCategoryFacetsPreserveReferenceOrder(t *testing.T) {
	categories := []models.Category{
		{ID: "z-last"},
		{ID: "a-first"},
	}

	facets := CategoryFacets(nil, categories)
	if facets[0].ID != "z-last" || facets[1].ID != "a-first" {
		t.Fatalf("reference order not preserved: %+v", facets)
	}
}
