package mapsurface

import (
	"errors"
	"sync"

	"github.com/bgraf/gpxview/geotrack"
)

var (
	ErrNoContainer    = errors.New("map container not found")
	ErrNotInitialized = errors.New("map surface not initialized")
)

// TileLayer is the base layer drawn below every overlay.
type TileLayer struct {
	URL         string `json:"url"`
	MaxZoom     int    `json:"maxZoom"`
	Attribution string `json:"attribution"`
}

// Layer is anything that can be attached to the map, usually a track overlay.
type Layer interface {
	LayerID() string
}

// Surface owns the single map instance of a UI session.
type Surface struct {
	tiles TileLayer

	mu          sync.Mutex
	containerID string
	layers      []Layer
	viewport    geotrack.Bounds
	hasViewport bool
}

func New(tiles TileLayer) *Surface {
	return &Surface{tiles: tiles}
}

// Initialize binds the map to its container. Only the first call has an effect.
func (s *Surface) Initialize(containerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containerID != "" {
		return nil
	}

	if containerID == "" {
		return ErrNoContainer
	}

	s.containerID = containerID

	return nil
}

func (s *Surface) ContainerID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.containerID
}

func (s *Surface) Tiles() TileLayer {
	return s.tiles
}

func (s *Surface) Attach(layer Layer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containerID == "" {
		return ErrNotInitialized
	}

	for _, l := range s.layers {
		if l.LayerID() == layer.LayerID() {
			return nil
		}
	}

	s.layers = append(s.layers, layer)

	return nil
}

// Detach removes the layer. Detaching a layer that is not attached is a no-op.
func (s *Surface) Detach(layer Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.layers {
		if l.LayerID() == layer.LayerID() {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return
		}
	}
}

// Layers returns a copy of the attached layers.
func (s *Surface) Layers() []Layer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Layer(nil), s.layers...)
}

// FitToBounds moves the viewport to contain b. Zero-area boxes leave the viewport as it is.
func (s *Surface) FitToBounds(b geotrack.Bounds) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containerID == "" {
		return ErrNotInitialized
	}

	if b.IsDegenerate() {
		return nil
	}

	s.viewport = b
	s.hasViewport = true

	return nil
}

// Viewport returns the area the map currently shows, false before the first fit.
func (s *Surface) Viewport() (geotrack.Bounds, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewport, s.hasViewport
}
