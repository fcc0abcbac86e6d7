package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/bgraf/gpxview/display"
	"github.com/bgraf/gpxview/mapsurface"
)

// MapHTML returns the map container together with the script that mounts the Leaflet map into it.
// The track itself is fetched by the script once the server reports it as loaded.
func MapHTML(containerID string, tiles mapsurface.TileLayer) (template.HTML, error) {
	payload := map[string]any{
		"tiles":       tiles,
		"placeholder": display.Placeholder,
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serialize map payload: %w", err)
	}

	var buf bytes.Buffer

	_, _ = buf.WriteString(fmt.Sprintf(`<div class="gpx-map" id="%s">`, template.HTMLEscapeString(containerID)))

	_, _ = buf.WriteString(fmt.Sprintf(`
		<script>
		(function () {
			const mapData = %s;
			let mapContainer = document.currentScript.parentElement;
			window.addEventListener('DOMContentLoaded', function() {
				mountMap(mapContainer, mapData);
			});
		})();
		</script>`,
		string(payloadBytes),
	))
	_, _ = buf.WriteString("</div>")

	return template.HTML(buf.String()), nil
}
