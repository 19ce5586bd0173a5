package directory

import (
	"math"
	"testing"
)

func TestDistanceKmIdenticalPoints(t *testing.T) {
	if d := DistanceKm(0, 0, 0, 0); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
	if d := DistanceKm(43.65, -79.38, 43.65, -79.38); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	// Toronto <-> Vancouver
	ab := DistanceKm(43.65, -79.38, 49.28, -123.12)
	ba := DistanceKm(49.28, -123.12, 43.65, -79.38)
	if ab != ba {
		t.Fatalf("distance not symmetric: %f vs %f", ab, ba)
	}
}

func TestDistanceKmKnownValues(t *testing.T) {
	// One degree of longitude at the equator is ~111.19 km.
	d := DistanceKm(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.5 {
		t.Fatalf("1 degree at equator: expected ~111.19 km, got %f", d)
	}

	// Toronto to Vancouver is roughly 3360 km.
	d = DistanceKm(43.6532, -79.3832, 49.2827, -123.1207)
	if d < 3300 || d > 3420 {
		t.Fatalf("Toronto-Vancouver: expected ~3360 km, got %f", d)
	}
}

func TestDistanceKmOrdering(t *testing.T) {
	// Farther points must yield strictly larger distances.
	d1 := DistanceKm(0, 0, 0, 1)
	d10 := DistanceKm(0, 0, 0, 10)
	if !(d1 < d10) {
		t.Fatalf("expected %f < %f", d1, d10)
	}
}
