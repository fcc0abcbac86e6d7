package config

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

var (
	KeyListenAddress   = "serve.listen"
	KeyMaxUploadMB     = "serve.max_upload_mb"
	KeyInitialFile     = "serve.file"
	KeyMaxZoom         = "map.max_zoom"
	KeyTileURL         = "map.tile_url"
	KeyAttribution     = "map.attribution"
	KeyMapContainer    = "map.container"
	KeyOverlayColor    = "overlay.color"
	KeyDisplayTimezone = "display.timezone"
)

// SetDefaults registers the fixed constants of the map and overlay. Values can be overridden by the
// config file, environment or flags.
func SetDefaults() {
	viper.SetDefault(KeyListenAddress, ":8000")
	viper.SetDefault(KeyMaxUploadMB, 32)
	viper.SetDefault(KeyMaxZoom, 19)
	viper.SetDefault(KeyTileURL, "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	viper.SetDefault(
		KeyAttribution,
		`&copy; <a href="http://www.openstreetmap.org/copyright">OpenStreetMap</a>`,
	)
	viper.SetDefault(KeyMapContainer, "map")
	viper.SetDefault(KeyOverlayColor, "#ff0000")
	viper.SetDefault(KeyDisplayTimezone, "Local")
}

func ListenAddress() string {
	return viper.GetString(KeyListenAddress)
}

func MaxUploadBytes() int64 {
	return viper.GetInt64(KeyMaxUploadMB) << 20
}

func HasInitialFile() bool {
	return viper.GetString(KeyInitialFile) != ""
}

func InitialFile() string {
	return viper.GetString(KeyInitialFile)
}

func MaxZoom() int {
	return viper.GetInt(KeyMaxZoom)
}

func TileURL() string {
	return viper.GetString(KeyTileURL)
}

func Attribution() string {
	return viper.GetString(KeyAttribution)
}

func MapContainer() string {
	return viper.GetString(KeyMapContainer)
}

// OverlayColor returns the configured polyline color as hex string. Invalid values fall back to red.
func OverlayColor() string {
	c, err := colorful.Hex(viper.GetString(KeyOverlayColor))
	if err != nil {
		return "#ff0000"
	}

	return c.Hex()
}

// DisplayLocation is the time zone start and end times are shown in.
func DisplayLocation() *time.Location {
	name := viper.GetString(KeyDisplayTimezone)
	if name == "" || name == "Local" {
		return time.Local
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}

	return loc
}

func GPXExtensions() []string {
	return []string{".gpx"}
}

func NMEAExtensions() []string {
	return []string{".nmea", ".nma", ".log"}
}

// TrackExtensions lists every extension a track can be loaded from.
func TrackExtensions() []string {
	return append(GPXExtensions(), NMEAExtensions()...)
}
