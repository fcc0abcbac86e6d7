package render

import (
	"html/template"
	"strings"

	"github.com/bgraf/gpxview/config"
	"github.com/bgraf/gpxview/display"
)

// IndexPayload feeds index.html.
type IndexPayload struct {
	Snapshot display.Snapshot
	Map      template.HTML
	// Accept lists the file extensions offered by the file picker.
	Accept string
}

func NewIndexPayload(snapshot display.Snapshot, mapHTML template.HTML) IndexPayload {
	return IndexPayload{
		Snapshot: snapshot,
		Map:      mapHTML,
		Accept:   strings.Join(config.TrackExtensions(), ","),
	}
}
