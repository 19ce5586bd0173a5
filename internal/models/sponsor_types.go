package models

import "time"

// Ad placement slots a sponsor can be booked into.
const (
	PlacementHomepageFeatured = "homepage-featured"
	PlacementCategorySidebar  = "category-sidebar"
	PlacementStateBanner      = "state-banner"
	PlacementMainSponsor      = "main-sponsor"
)

// Sponsor is the model for the 'sponsors' table. Sponsors are promotional
// entities distinct from directory listings; they are picked into fixed page
// slots by placement and target match, first N wins, no rotation.
type Sponsor struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Logo        *string `json:"logo,omitempty" db:"logo"`
	Website     *string `json:"website,omitempty" db:"website"`
	CTA         *string `json:"cta,omitempty" db:"cta"` // Call-to-action label

	// JSON columns. Empty target lists mean "no scoping" (matches everywhere).
	Placement        []string `json:"placement" db:"-"`
	TargetCategories []string `json:"targetCategories,omitempty" db:"-"`
	TargetStates     []string `json:"targetStates,omitempty" db:"-"`

	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	IsActive  bool      `json:"isActive" db:"is_active"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
