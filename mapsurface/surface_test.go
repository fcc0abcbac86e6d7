package mapsurface

import (
	"errors"
	"testing"

	"github.com/bgraf/gpxview/geotrack"
)

type testLayer string

func (l testLayer) LayerID() string { return string(l) }

func newSurface(t *testing.T) *Surface {
	t.Helper()

	s := New(TileLayer{URL: "https://tile.example.org/{z}/{x}/{y}.png", MaxZoom: 19})
	if err := s.Initialize("map"); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	return s
}

func TestInitializeOnce(t *testing.T) {
	s := New(TileLayer{})

	if err := s.Initialize(""); !errors.Is(err, ErrNoContainer) {
		t.Fatalf("Initialize(\"\") = %v, want ErrNoContainer", err)
	}

	if err := s.Initialize("map"); err != nil {
		t.Fatalf("Initialize(map): %v", err)
	}
	if err := s.Initialize("other"); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}
	if got := s.ContainerID(); got != "map" {
		t.Errorf("ContainerID() = %q, want map", got)
	}
}

func TestNotInitialized(t *testing.T) {
	s := New(TileLayer{})

	if err := s.Attach(testLayer("a")); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Attach = %v, want ErrNotInitialized", err)
	}
	if err := s.FitToBounds(geotrack.Bounds{MaxLat: 1, MaxLon: 1}); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("FitToBounds = %v, want ErrNotInitialized", err)
	}
}

func TestAttachDetach(t *testing.T) {
	s := newSurface(t)

	_ = s.Attach(testLayer("a"))
	_ = s.Attach(testLayer("a"))
	if n := len(s.Layers()); n != 1 {
		t.Fatalf("len(Layers()) = %d after attaching twice, want 1", n)
	}

	s.Detach(testLayer("b"))
	if n := len(s.Layers()); n != 1 {
		t.Fatalf("detaching an unknown layer changed layers to %d", n)
	}

	s.Detach(testLayer("a"))
	if n := len(s.Layers()); n != 0 {
		t.Fatalf("len(Layers()) = %d after detach, want 0", n)
	}
}

func TestFitToBounds(t *testing.T) {
	s := newSurface(t)

	if _, ok := s.Viewport(); ok {
		t.Fatalf("viewport set before any fit")
	}

	b := geotrack.Bounds{MinLat: 47, MinLon: 8, MaxLat: 47.1, MaxLon: 8.1}
	if err := s.FitToBounds(b); err != nil {
		t.Fatalf("FitToBounds: %v", err)
	}

	// a single point has no area
	_ = s.FitToBounds(geotrack.Bounds{MinLat: 1, MinLon: 1, MaxLat: 1, MaxLon: 1})

	got, ok := s.Viewport()
	if !ok || got != b {
		t.Errorf("Viewport() = %+v, %v, want %+v", got, ok, b)
	}
}
