package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Store lifecycle states. Only active stores are ever shown publicly.
const (
	StatusActive      = "active"
	StatusNeedsReview = "needs-review"
	StatusClosed      = "closed"
)

// StoreType is a flag set: a store can be brick-and-mortar, online, mobile,
// or any mix. On the wire (JSON and the DB column) it is a '+'-joined string
// like "brick-and-mortar+online".
type StoreType uint8

const (
	TypeBrickAndMortar StoreType = 1 << iota
	TypeOnline
	TypeMobile
)

// ParseStoreType reads the wire form. Tokens are case-insensitive and
// unknown ones are dropped. The legacy value "both" (older rows) means
// brick-and-mortar plus online.
func ParseStoreType(s string) StoreType {
	var t StoreType
	for _, token := range strings.Split(s, "+") {
		switch strings.ToLower(strings.TrimSpace(token)) {
		case "brick-and-mortar":
			t |= TypeBrickAndMortar
		case "online":
			t |= TypeOnline
		case "mobile":
			t |= TypeMobile
		case "both":
			t |= TypeBrickAndMortar | TypeOnline
		}
	}
	return t
}

// Has reports whether any of the wanted flags is set (any-of semantics:
// a hybrid store matches an online-only filter).
func (t StoreType) Has(want StoreType) bool {
	return t&want != 0
}

// String renders the wire form with a fixed token order.
func (t StoreType) String() string {
	tokens := []string{}
	if t&TypeBrickAndMortar != 0 {
		tokens = append(tokens, "brick-and-mortar")
	}
	if t&TypeOnline != 0 {
		tokens = append(tokens, "online")
	}
	if t&TypeMobile != 0 {
		tokens = append(tokens, "mobile")
	}
	return strings.Join(tokens, "+")
}

func (t StoreType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *StoreType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseStoreType(s)
	return nil
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Store is one directory listing. Optional fields are pointers so absent
// values serialize as null rather than "".
type Store struct {
	ID          string    `json:"id"` // Slug: name + primary city
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"` // Category ids, stored as a JSON column
	Type        StoreType `json:"type"`

	Logo    *string `json:"logo"`
	Website *string `json:"website"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`

	Address     *string `json:"address"`
	City        string  `json:"city"`
	State       string  `json:"state"` // Two-letter code, e.g. "CA" or "ON"
	Country     string  `json:"country"`
	PostalCode  *string `json:"postalCode"`
	Coordinates *LatLng `json:"coordinates"` // Absent until geocoded

	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	Twitter   *string `json:"twitter"`
	TikTok    *string `json:"tiktok"`
	Pinterest *string `json:"pinterest"`

	OffersWholesale     bool `json:"offersWholesale"`
	OffersLocalDelivery bool `json:"offersLocalDelivery"`
	Featured            bool `json:"featured"`

	Status string `json:"status"`
	Source string `json:"source"` // admin | import | public-submission

	CreatedAt      time.Time  `json:"createdAt"`
	LastVerifiedAt *time.Time `json:"lastVerifiedAt"`

	// Secondary locations, loaded on the detail endpoint only.
	Locations []StoreLocation `json:"locations,omitempty"`
}

// StoreLocation is an additional physical location for a multi-site store.
// The store's own address fields hold the primary location.
type StoreLocation struct {
	ID         int64   `json:"id"`
	StoreID    string  `json:"storeId"`
	Address    *string `json:"address"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode *string `json:"postalCode"`
	Phone      *string `json:"phone"`
	Coordinate *LatLng `json:"coordinates"`
	Position   int     `json:"position"` // Display order
}
