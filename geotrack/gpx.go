package geotrack

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bgraf/gpxview/option"
	"github.com/tkrajina/gpxgo/gpx"
)

// ParseGPX reads a GPX document. Track points take precedence, route points are used when the
// document has no track points.
func ParseGPX(data []byte) (*Track, error) {
	gpxData, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("read GPX data: %w", err)
	}

	var (
		track     Track
		heartRate averager
		cadence   averager
		elevation bool
	)

	for _, trk := range gpxData.Tracks {
		for _, segment := range trk.Segments {
			for _, p := range segment.Points {
				track.points = append(track.points, GPXPoint{Lat: p.Latitude, Lon: p.Longitude, Time: p.Timestamp})
				collectExtensions(p.Extensions.Nodes, &heartRate, &cadence)
				elevation = elevation || p.Elevation.NotNull()
			}
		}
	}

	if len(track.points) > 0 {
		track.distance = gpxData.Length2D()

		if _, ok := track.StartTime(); ok {
			md := gpxData.MovingData()
			track.movingTime = option.Some(time.Duration(md.MovingTime * float64(time.Second)))
			track.movingDistance = md.MovingDistance
		}

		if elevation {
			track.elevationGain = option.Some(gpxData.UphillDownhill().Uphill)
		}
	} else {
		var elevations []float64

		for _, route := range gpxData.Routes {
			for _, p := range route.Points {
				track.points = append(track.points, GPXPoint{Lat: p.Latitude, Lon: p.Longitude, Time: p.Timestamp})
				collectExtensions(p.Extensions.Nodes, &heartRate, &cadence)
				if p.Elevation.NotNull() {
					elevations = append(elevations, p.Elevation.Value())
				}
			}
		}

		if len(track.points) == 0 {
			return nil, ErrNoTrackPoints
		}

		track.distance = pathLength(track.points)
		track.movingTime, track.movingDistance = movingStats(track.points)

		if len(elevations) > 0 {
			track.elevationGain = option.Some(uphill(elevations))
		}
	}

	track.heartRate = heartRate.average()
	track.cadence = cadence.average()

	return &track, nil
}

// collectExtensions walks point extensions at any depth, e.g.
// <gpxtpx:TrackPointExtension><gpxtpx:hr>140</gpxtpx:hr></gpxtpx:TrackPointExtension>.
func collectExtensions(nodes []gpx.ExtensionNode, heartRate, cadence *averager) {
	for _, node := range nodes {
		if len(node.Nodes) > 0 {
			collectExtensions(node.Nodes, heartRate, cadence)
			continue
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(node.Data), 64)
		if err != nil {
			continue
		}

		switch strings.ToLower(node.XMLName.Local) {
		case "hr", "heartrate":
			heartRate.add(value)
		case "cad", "cadence":
			cadence.add(value)
		}
	}
}

type averager struct {
	sum   float64
	count int
}

func (a *averager) add(v float64) {
	a.sum += v
	a.count++
}

func (a *averager) average() option.Option[float64] {
	if a.count == 0 {
		return option.None[float64]()
	}

	return option.Some(a.sum / float64(a.count))
}

func uphill(elevations []float64) float64 {
	gain := 0.0
	for i := 1; i < len(elevations); i++ {
		if d := elevations[i] - elevations[i-1]; d > 0 {
			gain += d
		}
	}

	return gain
}
