// Package geocode wraps the Nominatim (OpenStreetMap) search endpoint the
// way the import tooling needs it: one request every 1.1 seconds per their
// usage policy, and a handful of query-normalization fallbacks because raw
// street addresses with unit numbers or ordinal suffixes often miss.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "EcoDirectory/1.0"

// Result is a successfully resolved coordinate pair.
type Result struct {
	Lat float64
	Lng float64
}

// Client is a rate-limited Nominatim client. Safe for use from a single
// import run or maintenance script; the limiter serializes requests.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

func NewClient() *Client {
	baseURL := os.Getenv("NOMINATIM_URL")
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		// Nominatim asks for at most 1 req/s; 1.1s keeps us clear of it.
		limiter: rate.NewLimiter(rate.Every(1100*time.Millisecond), 1),
		baseURL: baseURL,
	}
}

// Geocode resolves a business address to coordinates, trying progressively
// simpler queries:
//  1. the full address as-is
//  2. the normalized address (no unit numbers, no ordinal suffixes)
//  3. city + state + country only
//
// Canadian province codes are expanded to full names first (Nominatim
// prefers "Ontario" over "ON"). Returns nil with no error when every
// strategy comes up empty; a miss is not a failure.
func (c *Client) Geocode(ctx context.Context, address, city, state, country string) (*Result, error) {
	if city == "" && state == "" {
		return nil, nil
	}

	expandedState := state
	if country == "Canada" {
		expandedState = ExpandProvince(state)
	}

	queries := []string{
		joinParts(address, city, expandedState, country),
		joinParts(NormalizeAddress(address), city, expandedState, country),
		joinParts("", city, expandedState, country),
	}

	seen := make(map[string]bool)
	for _, q := range queries {
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		result, err := c.query(ctx, q)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
	}

	return nil, nil
}

func (c *Client) query(ctx context.Context, q string) (*Result, error) {
	params := url.Values{}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	// Nominatim delivers coordinates as strings.
	var hits []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("bad latitude %q: %w", hits[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("bad longitude %q: %w", hits[0].Lon, err)
	}

	return &Result{Lat: lat, Lng: lng}, nil
}

var (
	unitRe     = regexp.MustCompile(`(?i)(\b(unit|suite|apt|ste)|#)\s*\S+`)
	leadUnitRe = regexp.MustCompile(`^\d+\s+(\d)`)
	ordinalRe  = regexp.MustCompile(`(?i)(\d+)(st|nd|rd|th)\b`)
)

// NormalizeAddress strips the parts of a street address that throw
// Nominatim off: unit/suite/apt markers, a bare leading unit number
// ("103 2115 Main St" -> "2115 Main St"), and ordinal suffixes
// ("9th Avenue" -> "9 Avenue").
func NormalizeAddress(addr string) string {
	cleaned := strings.TrimSpace(unitRe.ReplaceAllString(addr, ""))
	cleaned = leadUnitRe.ReplaceAllString(cleaned, "$1")
	cleaned = ordinalRe.ReplaceAllString(cleaned, "$1")
	return cleaned
}

var provinceNames = map[string]string{
	"AB": "Alberta", "BC": "British Columbia", "SK": "Saskatchewan",
	"MB": "Manitoba", "ON": "Ontario", "QC": "Quebec", "NB": "New Brunswick",
	"NS": "Nova Scotia", "PE": "Prince Edward Island", "NL": "Newfoundland and Labrador",
	"YT": "Yukon", "NT": "Northwest Territories", "NU": "Nunavut",
}

// ExpandProvince maps a Canadian province code to its full name, passing
// unknown values through unchanged.
func ExpandProvince(code string) string {
	if name, ok := provinceNames[strings.ToUpper(code)]; ok {
		return name
	}
	return code
}

func joinParts(parts ...string) string {
	nonEmpty := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
