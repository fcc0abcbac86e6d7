package geotrack

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"
	"time"

	"github.com/bgraf/gpxview/config"
	"github.com/bgraf/gpxview/option"
	"github.com/jftuga/geodist"
)

var ErrNoTrackPoints = errors.New("track contains no points")

// Segments slower than this are counted as stopped, in m/s.
const movingSpeedThreshold = 0.3

// Parse reads a track from data. The format is chosen by the extension of name and, for names
// without a known extension, by the first bytes of data.
func Parse(name string, data []byte) (*Track, error) {
	ext := strings.ToLower(path.Ext(name))
	if slices.Contains(config.GPXExtensions(), ext) {
		return ParseGPX(data)
	} else if slices.Contains(config.NMEAExtensions(), ext) {
		return ParseNMEA(data)
	}

	switch sniff(data) {
	case formatGPX:
		return ParseGPX(data)
	case formatNMEA:
		return ParseNMEA(data)
	}

	return nil, fmt.Errorf("unknown track format of '%s'", name)
}

type format int

const (
	formatUnknown format = iota
	formatGPX
	formatNMEA
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// sniff guesses the format from the first non-blank byte: XML documents start with '<', NMEA
// sentences with '$' or '!'.
func sniff(data []byte) format {
	data = bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n")
	if len(data) == 0 {
		return formatUnknown
	}

	switch data[0] {
	case '<':
		return formatGPX
	case '$', '!':
		return formatNMEA
	}

	return formatUnknown
}

// LoadTrack reads and parses the track file at trackFilePath.
func LoadTrack(trackFilePath string) (*Track, error) {
	data, err := os.ReadFile(trackFilePath)
	if err != nil {
		return nil, fmt.Errorf("read track file: %w", err)
	}

	return Parse(trackFilePath, data)
}

func distance(a, b GPXPoint) float64 {
	_, km := geodist.HaversineDistance(
		geodist.Coord{Lat: a.Lat, Lon: a.Lon},
		geodist.Coord{Lat: b.Lat, Lon: b.Lon},
	)

	return km * 1000
}

// pathLength sums the great-circle distances between consecutive points in meters.
func pathLength(points []GPXPoint) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += distance(points[i-1], points[i])
	}

	return total
}

func movingStats(points []GPXPoint) (option.Option[time.Duration], float64) {
	var (
		moving      time.Duration
		movingMeter float64
		timed       bool
	)

	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		if prev.Time.IsZero() || curr.Time.IsZero() {
			continue
		}

		dt := curr.Time.Sub(prev.Time)
		if dt <= 0 {
			continue
		}
		timed = true

		d := distance(prev, curr)
		if d/dt.Seconds() >= movingSpeedThreshold {
			moving += dt
			movingMeter += d
		}
	}

	return option.When(moving, timed), movingMeter
}
