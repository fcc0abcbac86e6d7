package geotrack

import (
	"encoding/json"
	"time"

	"github.com/bgraf/gpxview/option"
)

type GPXPoint struct {
	Lat, Lon float64
	Time     time.Time
}

func (p GPXPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.Lat, p.Lon})
}

// Bounds is the bounding box of a track in geographic coordinates.
type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// IsDegenerate reports whether the box has zero area.
func (b Bounds) IsDegenerate() bool {
	return b.MinLat >= b.MaxLat || b.MinLon >= b.MaxLon
}

// Contains reports whether other lies completely within b.
func (b Bounds) Contains(other Bounds) bool {
	return b.MinLat <= other.MinLat && b.MaxLat >= other.MaxLat &&
		b.MinLon <= other.MinLon && b.MaxLon >= other.MaxLon
}

func (b Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal([][]float64{{b.MinLat, b.MinLon}, {b.MaxLat, b.MaxLon}})
}

// BoundsOf returns the bounding box of the given points.
func BoundsOf(points []GPXPoint) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLon: points[0].Lon, MaxLon: points[0].Lon,
	}

	for _, p := range points[1:] {
		if p.Lat < b.MinLat {
			b.MinLat = p.Lat
		}
		if p.Lat > b.MaxLat {
			b.MaxLat = p.Lat
		}
		if p.Lon < b.MinLon {
			b.MinLon = p.Lon
		}
		if p.Lon > b.MaxLon {
			b.MaxLon = p.Lon
		}
	}

	return b, true
}

// TrackSource exposes the derived fields of a loaded track. A false second return value means the
// file does not carry the field.
type TrackSource interface {
	Bounds() (Bounds, bool)
	StartTime() (time.Time, bool)
	EndTime() (time.Time, bool)
	TotalTime() (time.Duration, bool)
	MovingTime() (time.Duration, bool)
	// Distance in meters.
	Distance() float64
	AverageHeartRate() (float64, bool)
	AverageCadence() (float64, bool)
	// MovingPace is the moving time needed per kilometer.
	MovingPace() (time.Duration, bool)
	// ElevationGain in meters.
	ElevationGain() (float64, bool)
	Points() []GPXPoint
}

// Track is the TrackSource produced by the GPX and NMEA loaders.
type Track struct {
	points []GPXPoint

	distance       float64
	movingDistance float64

	movingTime    option.Option[time.Duration]
	heartRate     option.Option[float64]
	cadence       option.Option[float64]
	elevationGain option.Option[float64]
}

func (t *Track) Points() []GPXPoint {
	return t.points
}

func (t *Track) Bounds() (Bounds, bool) {
	return BoundsOf(t.points)
}

func (t *Track) StartTime() (time.Time, bool) {
	for _, p := range t.points {
		if !p.Time.IsZero() {
			return p.Time, true
		}
	}

	return time.Time{}, false
}

func (t *Track) EndTime() (time.Time, bool) {
	for i := len(t.points) - 1; i >= 0; i-- {
		if !t.points[i].Time.IsZero() {
			return t.points[i].Time, true
		}
	}

	return time.Time{}, false
}

func (t *Track) TotalTime() (time.Duration, bool) {
	start, ok := t.StartTime()
	if !ok {
		return 0, false
	}

	end, _ := t.EndTime()

	return end.Sub(start), true
}

func (t *Track) MovingTime() (time.Duration, bool) {
	return t.movingTime.Value()
}

func (t *Track) Distance() float64 {
	return t.distance
}

func (t *Track) AverageHeartRate() (float64, bool) {
	return t.heartRate.Value()
}

func (t *Track) AverageCadence() (float64, bool) {
	return t.cadence.Value()
}

func (t *Track) MovingPace() (time.Duration, bool) {
	moving, ok := t.movingTime.Value()
	if !ok || t.movingDistance <= 0 {
		return 0, false
	}

	perKM := float64(moving) / (t.movingDistance / 1000)

	return time.Duration(perKM), true
}

func (t *Track) ElevationGain() (float64, bool) {
	return t.elevationGain.Value()
}
