package directory

import (
	"testing"
	"time"

	"github.com/zyla999/eco-directory/internal/models"
)

var sponsorNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func liveSponsor(id string, placement ...string) models.Sponsor {
	return models.Sponsor{
		ID:        id,
		Name:      id,
		Placement: placement,
		StartDate: sponsorNow.AddDate(0, -1, 0),
		EndDate:   sponsorNow.AddDate(0, 1, 0),
		IsActive:  true,
	}
}

func TestSponsorsForSlotFirstNMatches(t *testing.T) {
	sponsors := []models.Sponsor{
		liveSponsor("a", models.PlacementMainSponsor),
		liveSponsor("b", models.PlacementHomepageFeatured),
		liveSponsor("c", models.PlacementMainSponsor),
		liveSponsor("d", models.PlacementMainSponsor),
	}

	got := SponsorsForSlot(sponsors, models.PlacementMainSponsor, sponsorNow, 2)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("expected first two main-sponsor matches [a c], got %+v", got)
	}
}

func TestSponsorsForSlotSkipsInactiveAndExpired(t *testing.T) {
	inactive := liveSponsor("off", models.PlacementMainSponsor)
	inactive.IsActive = false

	expired := liveSponsor("expired", models.PlacementMainSponsor)
	expired.EndDate = sponsorNow.AddDate(0, -1, 0)

	future := liveSponsor("future", models.PlacementMainSponsor)
	future.StartDate = sponsorNow.AddDate(0, 1, 0)
	future.EndDate = sponsorNow.AddDate(0, 2, 0)

	got := SponsorsForSlot([]models.Sponsor{inactive, expired, future}, models.PlacementMainSponsor, sponsorNow, 5)
	if len(got) != 0 {
		t.Fatalf("expected no live sponsors, got %+v", got)
	}
}

func TestSponsorsForCategoryTargeting(t *testing.T) {
	anyCat := liveSponsor("any", models.PlacementCategorySidebar)

	refillOnly := liveSponsor("refill", models.PlacementCategorySidebar)
	refillOnly.TargetCategories = []string{"refillery"}

	bulkOnly := liveSponsor("bulk", models.PlacementCategorySidebar)
	bulkOnly.TargetCategories = []string{"bulk-foods"}

	sponsors := []models.Sponsor{anyCat, refillOnly, bulkOnly}

	got := SponsorsForCategory(sponsors, "refillery", nil, sponsorNow, 5)
	if len(got) != 2 || got[0].ID != "any" || got[1].ID != "refill" {
		t.Fatalf("expected [any refill], got %+v", got)
	}
}

func TestSponsorsForCategoryExcludesIDs(t *testing.T) {
	a := liveSponsor("a", models.PlacementCategorySidebar)
	b := liveSponsor("b", models.PlacementCategorySidebar)

	got := SponsorsForCategory([]models.Sponsor{a, b}, "refillery", []string{"a"}, sponsorNow, 5)
	if len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only b after excluding a, got %+v", got)
	}
}

func TestSponsorForState(t *testing.T) {
	on := liveSponsor("on-banner", models.PlacementStateBanner)
	on.TargetStates = []string{"ON"}

	anywhere := liveSponsor("anywhere", models.PlacementStateBanner)

	sponsors := []models.Sponsor{on, anywhere}

	if got := SponsorForState(sponsors, "ON", sponsorNow); got == nil || got.ID != "on-banner" {
		t.Fatalf("expected on-banner for ON, got %+v", got)
	}
	if got := SponsorForState(sponsors, "BC", sponsorNow); got == nil || got.ID != "anywhere" {
		t.Fatalf("expected untargeted sponsor for BC, got %+v", got)
	}
	if got := SponsorForState([]models.Sponsor{on}, "BC", sponsorNow); got != nil {
		t.Fatalf("expected no sponsor for BC, got %+v", got)
	}
}
