package display

import (
	"fmt"
	"math"
	"time"
)

// FormatClock renders the time of day as H:MM:SS, e.g. 9:05:03.
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// FormatDuration renders d as H:MM:SS rounded to full seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	secs := int64(d.Round(time.Second) / time.Second)

	return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// FormatDistance converts meters to kilometers with two decimals.
func FormatDistance(meters float64) string {
	km := math.Round(meters/10) / 100
	return fmt.Sprintf("%.2f km", km)
}

// FormatPace renders the time per kilometer as M:SS /km.
func FormatPace(perKM time.Duration) string {
	secs := int64(perKM.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d /km", secs/60, secs%60)
}

func FormatHeartRate(bpm float64) string {
	return fmt.Sprintf("%.0f bpm", math.Round(bpm))
}

func FormatCadence(rpm float64) string {
	return fmt.Sprintf("%.0f rpm", math.Round(rpm))
}

func FormatElevation(meters float64) string {
	return fmt.Sprintf("%.0f m", math.Round(meters))
}
