package overlay

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bgraf/gpxview/blob"
	"github.com/bgraf/gpxview/display"
	"github.com/bgraf/gpxview/geotrack"
	"github.com/bgraf/gpxview/mapsurface"
)

// InputFile is a track file supplied by the host.
type InputFile struct {
	Name string
	Data []byte
}

// Style is the fixed rendering style of a track overlay.
type Style struct {
	Color string `json:"color"`
}

// Overlay is a track layer built from one input file.
type Overlay struct {
	Generation uint64
	Ref        blob.Ref
	Style      Style

	cancel context.CancelFunc
	done   chan struct{}

	// guarded by the controller
	track geotrack.TrackSource
}

func (o *Overlay) LayerID() string {
	return o.Ref.ID.String()
}

// Done is closed once the completion callback of the overlay has run, whether it was applied or
// ignored because the overlay had been superseded.
func (o *Overlay) Done() <-chan struct{} {
	return o.done
}

// Controller attaches at most one track overlay to the map surface and copies the statistics of the
// most recently requested track into the display slots.
type Controller struct {
	surface *mapsurface.Surface
	slots   *display.Slots
	blobs   *blob.Store
	loader  Loader
	style   Style
	loc     *time.Location

	mu         sync.Mutex
	generation uint64
	current    *Overlay
}

// NewController creates a controller. A nil loader parses the registered blobs with geotrack.Parse.
func NewController(
	surface *mapsurface.Surface,
	slots *display.Slots,
	blobs *blob.Store,
	loader Loader,
	style Style,
	loc *time.Location,
) *Controller {
	if loader == nil {
		loader = BlobLoader{Blobs: blobs}
	}

	return &Controller{
		surface: surface,
		slots:   slots,
		blobs:   blobs,
		loader:  loader,
		style:   style,
		loc:     loc,
	}
}

// SetFile replaces the current overlay by one for file. A nil file only removes the current overlay
// and leaves the display slots showing their previous content.
func (c *Controller) SetFile(file *InputFile) (*Overlay, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detachLocked()

	if file == nil {
		c.slots.CancelPending()
		return nil, nil
	}

	c.generation++
	ref := c.blobs.Register(file.Name, file.Data)
	ctx, cancel := context.WithCancel(context.Background())

	ov := &Overlay{
		Generation: c.generation,
		Ref:        ref,
		Style:      c.style,
		cancel:     cancel,
		done:       make(chan struct{}),
	}

	if err := c.surface.Attach(ov); err != nil {
		cancel()
		c.blobs.Release(ref.ID)
		c.slots.CancelPending()
		return nil, fmt.Errorf("attach overlay: %w", err)
	}

	c.current = ov
	c.slots.MarkPending()

	go c.load(ctx, ov)

	return ov, nil
}

// Close removes the current overlay, e.g. when the UI goes away.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.detachLocked()
	c.slots.CancelPending()
}

// Current returns the attached overlay, nil if there is none, and whether its track has loaded.
func (c *Controller) Current() (*Overlay, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current, c.current != nil && c.current.track != nil
}

// State is a consistent view of the current overlay and the slots it produced.
type State struct {
	Slots   display.Snapshot
	Overlay *Overlay
	Loaded  bool

	// Viewport is the fitted area of the current overlay, nil until it has loaded.
	Viewport *geotrack.Bounds
}

// State reads overlay, slots and viewport under one lock, so all parts belong to the same
// generation.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{
		Slots:   c.slots.Snapshot(),
		Overlay: c.current,
		Loaded:  c.current != nil && c.current.track != nil,
	}

	if st.Loaded {
		if viewport, ok := c.surface.Viewport(); ok {
			st.Viewport = &viewport
		}
	}

	return st
}

// Track returns the points of the current overlay once it has loaded.
func (c *Controller) Track() ([]geotrack.GPXPoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil || c.current.track == nil {
		return nil, false
	}

	return c.current.track.Points(), true
}

func (c *Controller) detachLocked() {
	if c.current == nil {
		return
	}

	c.current.cancel()
	c.surface.Detach(c.current)
	c.blobs.Release(c.current.Ref.ID)
	c.current = nil
}

func (c *Controller) load(ctx context.Context, ov *Overlay) {
	defer close(ov.done)

	src, err := c.loader.Load(ctx, ov.Ref)
	c.loaded(ov, src, err)
}

// loaded is the one-shot completion callback of an overlay.
func (c *Controller) loaded(ov *Overlay, src geotrack.TrackSource, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != ov || c.generation != ov.Generation {
		log.Printf("ignoring superseded track '%s' (generation %d)", ov.Ref.Name, ov.Generation)
		return
	}

	if err != nil {
		log.Printf("could not load track '%s': %s", ov.Ref.Name, err)
		c.slots.MarkFailed(err)
		return
	}

	ov.track = src

	if bounds, ok := src.Bounds(); ok {
		if err := c.surface.FitToBounds(bounds); err != nil {
			log.Printf("could not fit map to track '%s': %s", ov.Ref.Name, err)
		}
	}

	c.slots.Apply(src, c.loc)
	log.Printf("loaded track '%s' (generation %d)", ov.Ref.Name, ov.Generation)
}
