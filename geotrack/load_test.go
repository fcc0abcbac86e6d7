package geotrack

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func loadFixture(t *testing.T, name string) *Track {
	t.Helper()

	track, err := LoadTrack(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("LoadTrack(%s): %v", name, err)
	}

	return track
}

func TestParseGPXWithSensors(t *testing.T) {
	track := loadFixture(t, "ride.gpx")

	if n := len(track.Points()); n != 4 {
		t.Fatalf("len(Points()) = %d, want 4", n)
	}

	bounds, ok := track.Bounds()
	want := Bounds{MinLat: 47.000, MinLon: 8.000, MaxLat: 47.003, MaxLon: 8.002}
	if !ok || bounds != want {
		t.Errorf("Bounds() = %+v, %v, want %+v", bounds, ok, want)
	}

	start, ok := track.StartTime()
	if !ok || !start.Equal(time.Date(2024, 6, 15, 9, 5, 3, 0, time.UTC)) {
		t.Errorf("StartTime() = %v, %v", start, ok)
	}

	total, ok := track.TotalTime()
	if !ok || total != 90*time.Second {
		t.Errorf("TotalTime() = %v, %v, want 1m30s", total, ok)
	}

	if d := track.Distance(); d < 300 || d > 450 {
		t.Errorf("Distance() = %f, want about 380m", d)
	}

	hr, ok := track.AverageHeartRate()
	if !ok || hr != 135 {
		t.Errorf("AverageHeartRate() = %f, %v, want 135", hr, ok)
	}

	cad, ok := track.AverageCadence()
	if !ok || cad != 83 {
		t.Errorf("AverageCadence() = %f, %v, want 83", cad, ok)
	}

	if _, ok := track.MovingTime(); !ok {
		t.Errorf("MovingTime() not available")
	}

	if gain, ok := track.ElevationGain(); !ok || gain <= 0 {
		t.Errorf("ElevationGain() = %f, %v, want positive", gain, ok)
	}
}

func TestParseGPXWithoutSensors(t *testing.T) {
	track := loadFixture(t, "walk.gpx")

	if _, ok := track.AverageHeartRate(); ok {
		t.Errorf("AverageHeartRate() available for a track without heart rate")
	}
	if _, ok := track.AverageCadence(); ok {
		t.Errorf("AverageCadence() available for a track without cadence")
	}
	if _, ok := track.ElevationGain(); ok {
		t.Errorf("ElevationGain() available for a track without elevation")
	}

	pace, ok := track.MovingPace()
	if !ok || pace <= 0 {
		t.Errorf("MovingPace() = %v, %v", pace, ok)
	}
}

func TestParseGPXRoute(t *testing.T) {
	track := loadFixture(t, "route.gpx")

	if n := len(track.Points()); n != 3 {
		t.Fatalf("len(Points()) = %d, want 3", n)
	}

	if _, ok := track.StartTime(); ok {
		t.Errorf("StartTime() available for an untimed route")
	}
	if _, ok := track.MovingTime(); ok {
		t.Errorf("MovingTime() available for an untimed route")
	}

	gain, ok := track.ElevationGain()
	if !ok || gain != 50 {
		t.Errorf("ElevationGain() = %f, %v, want 50", gain, ok)
	}

	// 0.01 degree north plus 0.01 degree east at 46 degrees latitude.
	if d := track.Distance(); math.Abs(d-1112-772) > 30 {
		t.Errorf("Distance() = %f, want about 1884m", d)
	}
}

func TestParseNMEA(t *testing.T) {
	track := loadFixture(t, "walk.nmea")

	if n := len(track.Points()); n != 4 {
		t.Fatalf("len(Points()) = %d, want 4 active RMC fixes", n)
	}

	start, ok := track.StartTime()
	if !ok || !start.Equal(time.Date(2024, 6, 15, 9, 5, 3, 0, time.UTC)) {
		t.Errorf("StartTime() = %v, %v", start, ok)
	}

	end, _ := track.EndTime()
	if !end.Equal(time.Date(2024, 6, 15, 9, 6, 33, 0, time.UTC)) {
		t.Errorf("EndTime() = %v", end)
	}

	if _, ok := track.AverageHeartRate(); ok {
		t.Errorf("AverageHeartRate() available for NMEA")
	}

	moving, ok := track.MovingTime()
	if !ok || moving != 90*time.Second {
		t.Errorf("MovingTime() = %v, %v, want 1m30s", moving, ok)
	}
}

func TestParseByContent(t *testing.T) {
	gpxData, err := os.ReadFile(filepath.Join("testdata", "walk.gpx"))
	if err != nil {
		t.Fatal(err)
	}
	nmeaData, err := os.ReadFile(filepath.Join("testdata", "walk.nmea"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		data   []byte
		points int
	}{
		{"activity_123", gpxData, 3},
		{"track.xml", gpxData, 3},
		{"gps.txt", nmeaData, 4},
	}

	for _, tc := range tests {
		track, err := Parse(tc.name, tc.data)
		if err != nil {
			t.Errorf("Parse(%s): %v", tc.name, err)
			continue
		}
		if n := len(track.Points()); n != tc.points {
			t.Errorf("Parse(%s): %d points, want %d", tc.name, n, tc.points)
		}
	}

	if _, err := Parse("notes.txt", []byte("just some text")); err == nil {
		t.Errorf("notes.txt: expected unknown format error")
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		data string
		want format
	}{
		{"<?xml version=\"1.0\"?><gpx/>", formatGPX},
		{"\xef\xbb\xbf\n  <gpx/>", formatGPX},
		{"$GPRMC,090503,A", formatNMEA},
		{"\r\n!AIVDM,1,1", formatNMEA},
		{"", formatUnknown},
		{"lat,lon\n47,8", formatUnknown},
	}

	for _, tc := range tests {
		if got := sniff([]byte(tc.data)); got != tc.want {
			t.Errorf("sniff(%q) = %d, want %d", tc.data, got, tc.want)
		}
	}
}

func TestParseNMEASkipsUnreadableLines(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "walk.nmea"))
	if err != nil {
		t.Fatal(err)
	}

	noisy := append([]byte("$PGRMZ,1234,f,3*19\n$GPRMC,garbled\n"), data...)
	track, err := ParseNMEA(noisy)
	if err != nil {
		t.Fatalf("ParseNMEA: %v", err)
	}
	if n := len(track.Points()); n != 4 {
		t.Errorf("len(Points()) = %d, want 4", n)
	}

	if _, err := ParseNMEA([]byte("$PGRMZ,1234,f,3*19\n")); !errors.Is(err, ErrNoTrackPoints) {
		t.Errorf("ParseNMEA(only unreadable) = %v, want ErrNoTrackPoints", err)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := LoadTrack(filepath.Join("testdata", "empty.gpx")); !errors.Is(err, ErrNoTrackPoints) {
		t.Errorf("empty.gpx: err = %v, want ErrNoTrackPoints", err)
	}

	if _, err := LoadTrack(filepath.Join("testdata", "broken.gpx")); err == nil {
		t.Errorf("broken.gpx: expected error")
	}

	if _, err := Parse("track.kml", []byte("<kml/>")); err == nil {
		t.Errorf("track.kml: expected error for a KML document")
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		b          Bounds
		degenerate bool
	}{
		{Bounds{MinLat: 1, MinLon: 1, MaxLat: 2, MaxLon: 2}, false},
		{Bounds{MinLat: 1, MinLon: 1, MaxLat: 1, MaxLon: 2}, true},
		{Bounds{MinLat: 1, MinLon: 2, MaxLat: 2, MaxLon: 2}, true},
		{Bounds{}, true},
	}

	for _, tc := range tests {
		if got := tc.b.IsDegenerate(); got != tc.degenerate {
			t.Errorf("%+v.IsDegenerate() = %v, want %v", tc.b, got, tc.degenerate)
		}
	}

	outer := Bounds{MinLat: 0, MinLon: 0, MaxLat: 10, MaxLon: 10}
	if !outer.Contains(Bounds{MinLat: 1, MinLon: 1, MaxLat: 2, MaxLon: 2}) {
		t.Errorf("Contains() = false for inner box")
	}
	if outer.Contains(Bounds{MinLat: -1, MinLon: 1, MaxLat: 2, MaxLon: 2}) {
		t.Errorf("Contains() = true for overlapping box")
	}
}
