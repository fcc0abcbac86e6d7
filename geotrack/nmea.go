package geotrack

import (
	"bufio"
	"bytes"
	"fmt"
	"time"

	"github.com/adrianmo/go-nmea"
)

// ParseNMEA reads the active RMC sentences of an NMEA log. Other sentence types and lines that do
// not parse are skipped.
func ParseNMEA(data []byte) (*Track, error) {
	var (
		track    Track
		firstErr error
		skipped  int
	)

	scanner := bufio.NewScanner(bytes.NewReader(data))

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			skipped++
			continue
		}

		if sentence.DataType() != nmea.TypeRMC {
			continue
		}

		rmc := sentence.(nmea.RMC)
		// We're only interested in "ACTIVE" status messages.
		if rmc.Validity != nmea.ValidRMC {
			continue
		}

		// Two digit years, anchored at 2000.
		date := time.Date(
			2000+rmc.Date.YY, time.Month(rmc.Date.MM), rmc.Date.DD,
			rmc.Time.Hour, rmc.Time.Minute, rmc.Time.Second, rmc.Time.Millisecond*int(time.Millisecond), time.UTC,
		)

		track.points = append(track.points, GPXPoint{
			Lat:  rmc.Latitude,
			Lon:  rmc.Longitude,
			Time: date,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(track.points) == 0 {
		if firstErr != nil {
			return nil, fmt.Errorf("%w (%d unreadable lines, first: %s)", ErrNoTrackPoints, skipped, firstErr)
		}
		return nil, ErrNoTrackPoints
	}

	track.distance = pathLength(track.points)
	track.movingTime, track.movingDistance = movingStats(track.points)

	return &track, nil
}
