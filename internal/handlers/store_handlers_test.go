package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/zyla999/eco-directory/internal/models"
)

func filterSpecContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodGet, "/v1/stores?"+rawQuery, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	c.Request = req
	return c
}

func TestBuildFilterSpecMalformedNearIsDropped(t *testing.T) {
	// A near point the client mangled must not fail the request; the
	// filter simply runs without distance sorting.
	cases := []string{
		"near=abc,def",
		"near=1.5",
		"near=1.5,xyz",
		"near=,",
		"near=1.5,2.5,3.5",
	}
	for _, query := range cases {
		spec := buildFilterSpec(filterSpecContext(t, query))
		if spec.NearPoint != nil {
			t.Errorf("query %q: expected no near point, got %+v", query, *spec.NearPoint)
		}
	}
}

func TestBuildFilterSpecValidNearParses(t *testing.T) {
	spec := buildFilterSpec(filterSpecContext(t, "near=43.6,-79.4"))

	if spec.NearPoint == nil {
		t.Fatal("expected a near point for a valid lat,lng pair")
	}
	want := models.LatLng{Lat: 43.6, Lng: -79.4}
	if *spec.NearPoint != want {
		t.Fatalf("parsed near point %+v, want %+v", *spec.NearPoint, want)
	}
}

func TestBuildFilterSpecWhitespaceInNearTolerated(t *testing.T) {
	spec := buildFilterSpec(filterSpecContext(t, "near=43.6,%20-79.4"))

	if spec.NearPoint == nil {
		t.Fatal("expected a near point when the pair has a space after the comma")
	}
	if spec.NearPoint.Lng != -79.4 {
		t.Fatalf("longitude parsed as %v, want -79.4", spec.NearPoint.Lng)
	}
}
