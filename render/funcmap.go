package render

import (
	"html/template"

	"github.com/bgraf/gpxview/display"
)

func makeTemplateFuncmap() template.FuncMap {
	return template.FuncMap{
		"statusClass": func(s display.Status) string {
			return "status-" + string(s)
		},
		"isPlaceholder": func(value string) bool {
			return value == display.Placeholder
		},
	}
}
