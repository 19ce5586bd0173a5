package directory

import (
	"testing"
	"time"

	"github.com/zyla999/eco-directory/internal/models"
)

func activeStore(id, name string) models.Store {
	return models.Store{
		ID:     id,
		Name:   name,
		Status: models.StatusActive,
		Type:   models.TypeBrickAndMortar,
	}
}

func ids(stores []models.Store) []string {
	out := make([]string, len(stores))
	for i, s := range stores {
		out[i] = s.ID
	}
	return out
}

func assertOrder(t *testing.T, got []models.Store, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d stores %v, got %d: %v", len(want), want, len(got), ids(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s (full order %v)", i, id, got[i].ID, ids(got))
		}
	}
}

func TestFilterNeverReturnsInactiveStores(t *testing.T) {
	closed := activeStore("b", "B Store")
	closed.Status = models.StatusClosed
	review := activeStore("c", "C Store")
	review.Status = models.StatusNeedsReview

	stores := []models.Store{activeStore("a", "A Store"), closed, review}

	for _, spec := range []FilterSpec{
		{},
		{TextQuery: "store"},
		{Sort: SortNewest},
	} {
		for _, s := range Filter(stores, spec) {
			if s.Status != models.StatusActive {
				t.Fatalf("spec %+v returned non-active store %s (%s)", spec, s.ID, s.Status)
			}
		}
	}
}

func TestFilterCategoryORSemantics(t *testing.T) {
	r1 := activeStore("r1", "One")
	r1.Categories = []string{"refillery"}
	r2 := activeStore("r2", "Two")
	r2.Categories = []string{"bulk-foods"}
	r3 := activeStore("r3", "Three")
	r3.Categories = []string{"refillery", "bulk-foods"}
	stores := []models.Store{r1, r2, r3}

	both := Filter(stores, FilterSpec{Categories: []string{"refillery", "bulk-foods"}})
	if len(both) != 3 {
		t.Fatalf("expected all 3 stores for category OR filter, got %v", ids(both))
	}

	one := Filter(stores, FilterSpec{Categories: []string{"refillery"}})
	if len(one) != 2 {
		t.Fatalf("expected r1 and r3, got %v", ids(one))
	}
}

func TestFilterDefaultSpecSortsByName(t *testing.T) {
	stores := []models.Store{
		activeStore("c", "Cedar Refill"),
		activeStore("a", "Acorn Bulk"),
		activeStore("b", "Birch Thrift"),
	}

	def := Filter(stores, FilterSpec{})
	assertOrder(t, def, "a", "b", "c")

	explicit := Filter(stores, FilterSpec{Sort: SortAZ})
	for i := range def {
		if def[i].ID != explicit[i].ID {
			t.Fatalf("default sort differs from explicit az at position %d", i)
		}
	}
}

func TestFilterTextSearchCaseInsensitive(t *testing.T) {
	s := activeStore("g", "Green Refillery")
	s.City = "Toronto"
	s.State = "ON"
	stores := []models.Store{s}

	for _, q := range []string{"green", "REFILLERY", "toronto", "on"} {
		if got := Filter(stores, FilterSpec{TextQuery: q}); len(got) != 1 {
			t.Fatalf("query %q: expected 1 match, got %d", q, len(got))
		}
	}

	if got := Filter(stores, FilterSpec{TextQuery: "vancouver"}); len(got) != 0 {
		t.Fatalf("expected no match for unrelated query, got %v", ids(got))
	}

	// Whitespace-only query is no filter at all.
	if got := Filter(stores, FilterSpec{TextQuery: "   "}); len(got) != 1 {
		t.Fatalf("whitespace query should not filter, got %d stores", len(got))
	}
}

func TestFilterStateAndCategoryCombined(t *testing.T) {
	mk := func(id, name, state string, cats ...string) models.Store {
		s := activeStore(id, name)
		s.State = state
		s.Categories = cats
		return s
	}
	stores := []models.Store{
		mk("1", "Eco CA", "CA", "refillery"),
		mk("2", "Eco NY", "NY", "refillery"),
		mk("3", "Eco ON", "ON", "refillery"),
		mk("4", "Bulk CA", "ca", "bulk-foods"),
		mk("5", "Also CA", "CA", "refillery", "bulk-foods"),
	}

	got := Filter(stores, FilterSpec{
		Categories: []string{"refillery"},
		States:     []string{"ca", "NY"},
	})
	assertOrder(t, got, "5", "1", "2") // "Also CA" < "Eco CA" < "Eco NY"
}

func TestFilterStoreTypeTokenMatch(t *testing.T) {
	hybrid := activeStore("h", "Hybrid")
	hybrid.Type = models.ParseStoreType("brick-and-mortar+online")
	physical := activeStore("p", "Physical")
	physical.Type = models.ParseStoreType("brick-and-mortar")
	stores := []models.Store{hybrid, physical}

	got := Filter(stores, FilterSpec{StoreTypes: models.TypeOnline})
	assertOrder(t, got, "h")
}

func TestFilterWholesaleOnly(t *testing.T) {
	w := activeStore("w", "Wholesale Co")
	w.OffersWholesale = true
	stores := []models.Store{activeStore("r", "Retail Co"), w}

	got := Filter(stores, FilterSpec{WholesaleOnly: true})
	assertOrder(t, got, "w")
}

func TestFilterDeliveryOnly(t *testing.T) {
	d := activeStore("d", "Delivers")
	d.OffersLocalDelivery = true
	stores := []models.Store{activeStore("n", "No Delivery"), d}

	got := Filter(stores, FilterSpec{DeliveryOnly: true})
	assertOrder(t, got, "d")
}

func TestFilterCountryExactMatch(t *testing.T) {
	us := activeStore("us", "US Store")
	us.Country = "USA"
	ca := activeStore("ca", "CA Store")
	ca.Country = "Canada"
	stores := []models.Store{us, ca}

	got := Filter(stores, FilterSpec{Country: "Canada"})
	assertOrder(t, got, "ca")
}

func TestFilterNewestSort(t *testing.T) {
	old := activeStore("old", "Old")
	old.CreatedAt = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mid := activeStore("mid", "Mid")
	mid.CreatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	fresh := activeStore("new", "New")
	fresh.CreatedAt = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	got := Filter(storeList(old, fresh, mid), FilterSpec{Sort: SortNewest})
	assertOrder(t, got, "new", "mid", "old")
}

func TestFilterFeaturedSortIsStable(t *testing.T) {
	a := activeStore("a", "Alpha")
	b := activeStore("b", "Beta")
	b.Featured = true
	c := activeStore("c", "Gamma")
	d := activeStore("d", "Delta")
	d.Featured = true

	got := Filter(storeList(a, b, c, d), FilterSpec{Sort: SortFeatured})
	assertOrder(t, got, "b", "d", "a", "c")
}

func TestFilterNearPointSortsByDistance(t *testing.T) {
	near := activeStore("near", "Near")
	near.Coordinates = &models.LatLng{Lat: 0, Lng: 0}
	mid := activeStore("mid", "Mid")
	mid.Coordinates = &models.LatLng{Lat: 0, Lng: 1}
	far := activeStore("far", "Far")
	far.Coordinates = &models.LatLng{Lat: 0, Lng: 10}

	got := Filter(storeList(far, near, mid), FilterSpec{
		NearPoint: &models.LatLng{Lat: 0, Lng: 0},
	})
	assertOrder(t, got, "near", "mid", "far")
}

func TestFilterNearPointMissingCoordinatesSortLast(t *testing.T) {
	located := activeStore("loc", "Located")
	located.Coordinates = &models.LatLng{Lat: 43.6, Lng: -79.4}
	unlocated := activeStore("unloc", "Address Unknown")

	// Irrespective of insertion order, the coordinate-less store comes last.
	for _, input := range [][]models.Store{
		{located, unlocated},
		{unlocated, located},
	} {
		got := Filter(input, FilterSpec{NearPoint: &models.LatLng{Lat: 43, Lng: -79}})
		assertOrder(t, got, "loc", "unloc")
	}
}

func TestFilterNearPointOverridesSortMode(t *testing.T) {
	a := activeStore("a", "Alpha")
	a.Coordinates = &models.LatLng{Lat: 0, Lng: 5}
	z := activeStore("z", "Zulu")
	z.Coordinates = &models.LatLng{Lat: 0, Lng: 1}

	got := Filter(storeList(a, z), FilterSpec{
		Sort:      SortAZ,
		NearPoint: &models.LatLng{Lat: 0, Lng: 0},
	})
	assertOrder(t, got, "z", "a")
}

func TestFilterUnknownValuesMatchNothing(t *testing.T) {
	s := activeStore("s", "Store")
	s.Categories = []string{"refillery"}
	s.State = "ON"
	stores := []models.Store{s}

	if got := Filter(stores, FilterSpec{Categories: []string{"no-such-category"}}); len(got) != 0 {
		t.Fatalf("unknown category should match zero stores, got %v", ids(got))
	}
	if got := Filter(stores, FilterSpec{States: []string{"XX"}}); len(got) != 0 {
		t.Fatalf("unknown state should match zero stores, got %v", ids(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	stores := []models.Store{
		activeStore("b", "Beta"),
		activeStore("a", "Alpha"),
	}

	Filter(stores, FilterSpec{})

	if stores[0].ID != "b" || stores[1].ID != "a" {
		t.Fatalf("input snapshot was reordered: %v", ids(stores))
	}
}

func storeList(stores ...models.Store) []models.Store {
	return stores
}
