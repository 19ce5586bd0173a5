package directory

import (
	"time"

	"github.com/zyla999/eco-directory/internal/models"
)

// sponsorLive checks the flags every slot shares: active, inside the booked
// date window, booked into the slot at all.
func sponsorLive(s models.Sponsor, slot string, now time.Time) bool {
	if !s.IsActive || now.Before(s.StartDate) || now.After(s.EndDate) {
		return false
	}
	for _, p := range s.Placement {
		if p == slot {
			return true
		}
	}
	return false
}

// SponsorsForSlot picks up to limit sponsors booked into the given slot.
// First N matches in input order; there is no rotation or ranking.
func SponsorsForSlot(sponsors []models.Sponsor, slot string, now time.Time, limit int) []models.Sponsor {
	matched := []models.Sponsor{}
	for _, s := range sponsors {
		if !sponsorLive(s, slot, now) {
			continue
		}
		matched = append(matched, s)
		if len(matched) == limit {
			break
		}
	}
	return matched
}

// SponsorsForCategory picks category-sidebar sponsors for a category page.
// A sponsor with no target categories matches every category. Sponsors whose
// ids appear in exclude are skipped (used to keep main-slot sponsors from
// doubling up in the sidebar).
func SponsorsForCategory(sponsors []models.Sponsor, categoryID string, exclude []string, now time.Time, limit int) []models.Sponsor {
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}

	matched := []models.Sponsor{}
	for _, s := range sponsors {
		if excluded[s.ID] || !sponsorLive(s, models.PlacementCategorySidebar, now) {
			continue
		}
		if len(s.TargetCategories) > 0 && !contains(s.TargetCategories, categoryID) {
			continue
		}
		matched = append(matched, s)
		if len(matched) == limit {
			break
		}
	}
	return matched
}

// SponsorForState picks the banner sponsor for a state page, or nil when no
// sponsor targets that state right now.
func SponsorForState(sponsors []models.Sponsor, stateCode string, now time.Time) *models.Sponsor {
	for _, s := range sponsors {
		if !sponsorLive(s, models.PlacementStateBanner, now) {
			continue
		}
		if len(s.TargetStates) > 0 && !contains(s.TargetStates, stateCode) {
			continue
		}
		return &s
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
