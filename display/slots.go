package display

import (
	"sync"
	"time"

	"github.com/bgraf/gpxview/geotrack"
)

type SlotName string

const (
	StartTime      SlotName = "starttime"
	EndTime        SlotName = "endtime"
	TotalTime      SlotName = "totaltime"
	MovingTime     SlotName = "movingtime"
	Distance       SlotName = "distance"
	AverageHR      SlotName = "averagehr"
	AverageCadence SlotName = "averagecadence"
	MovingPace     SlotName = "movingpace"
	ElevationGain  SlotName = "elevationgain"
)

// Order is the order slots are presented in.
var Order = []SlotName{
	StartTime, EndTime, TotalTime, MovingTime, Distance,
	AverageHR, AverageCadence, MovingPace, ElevationGain,
}

var labels = map[SlotName]string{
	StartTime:      "Start time",
	EndTime:        "End time",
	TotalTime:      "Total time",
	MovingTime:     "Moving time",
	Distance:       "Distance",
	AverageHR:      "Average HR",
	AverageCadence: "Average cadence",
	MovingPace:     "Moving pace",
	ElevationGain:  "Elevation gain",
}

func (n SlotName) Label() string {
	return labels[n]
}

// Placeholder is shown for slots without a value.
const Placeholder = "--"

type Status string

const (
	StatusEmpty   Status = "empty"
	StatusPending Status = "pending"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

var statusMessages = map[Status]string{
	StatusEmpty:   "No track loaded",
	StatusPending: "Loading track",
	StatusLoaded:  "",
	StatusFailed:  "Failed to load track",
}

func (s Status) Message() string {
	return statusMessages[s]
}

type Slot struct {
	Name  SlotName `json:"name"`
	Label string   `json:"label"`
	Value string   `json:"value"`
}

// Snapshot is an immutable copy of the slots for rendering.
type Snapshot struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Slots   []Slot `json:"slots"`
}

func (s Snapshot) Value(name SlotName) string {
	for _, slot := range s.Slots {
		if slot.Name == name {
			return slot.Value
		}
	}

	return ""
}

// Slots holds the formatted statistics of the most recently completed load.
type Slots struct {
	mu     sync.RWMutex
	values map[SlotName]string
	status Status
	err    error

	// status to return to when a pending load is cancelled
	settled Status
}

func New() *Slots {
	s := &Slots{status: StatusEmpty, settled: StatusEmpty}
	s.values = placeholders()
	return s
}

func placeholders() map[SlotName]string {
	values := make(map[SlotName]string, len(Order))
	for _, name := range Order {
		values[name] = Placeholder
	}

	return values
}

// MarkPending flags a load in flight. Slot values stay untouched.
func (s *Slots) MarkPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusPending {
		s.settled = s.status
	}
	s.status = StatusPending
}

// CancelPending restores the status that preceded a load which was cancelled before completion.
func (s *Slots) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusPending {
		s.status = s.settled
	}
}

// MarkFailed flags a load that could not be parsed. Slot values stay untouched.
func (s *Slots) MarkFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = StatusFailed
	s.err = err
}

// Reset returns every slot to its placeholder.
func (s *Slots) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = placeholders()
	s.status = StatusEmpty
	s.settled = StatusEmpty
	s.err = nil
}

// Apply writes the statistics of src. Fields src lacks show the placeholder.
func (s *Slots) Apply(src geotrack.TrackSource, loc *time.Location) {
	values := Values(src, loc)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = values
	s.status = StatusLoaded
	s.err = nil
}

func (s *Slots) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}

func (s *Slots) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Status:  s.status,
		Message: s.status.Message(),
		Slots:   make([]Slot, 0, len(Order)),
	}
	if s.status == StatusFailed && s.err != nil {
		snap.Error = s.err.Error()
	}

	for _, name := range Order {
		snap.Slots = append(snap.Slots, Slot{Name: name, Label: name.Label(), Value: s.values[name]})
	}

	return snap
}

// Values formats every statistic of src.
func Values(src geotrack.TrackSource, loc *time.Location) map[SlotName]string {
	if loc == nil {
		loc = time.Local
	}

	values := placeholders()

	if t, ok := src.StartTime(); ok {
		values[StartTime] = FormatClock(t.In(loc))
	}
	if t, ok := src.EndTime(); ok {
		values[EndTime] = FormatClock(t.In(loc))
	}
	if d, ok := src.TotalTime(); ok {
		values[TotalTime] = FormatDuration(d)
	}
	if d, ok := src.MovingTime(); ok {
		values[MovingTime] = FormatDuration(d)
	}

	values[Distance] = FormatDistance(src.Distance())

	if hr, ok := src.AverageHeartRate(); ok {
		values[AverageHR] = FormatHeartRate(hr)
	}
	if cad, ok := src.AverageCadence(); ok {
		values[AverageCadence] = FormatCadence(cad)
	}
	if pace, ok := src.MovingPace(); ok {
		values[MovingPace] = FormatPace(pace)
	}
	if gain, ok := src.ElevationGain(); ok {
		values[ElevationGain] = FormatElevation(gain)
	}

	return values
}
