package render

import (
	"fmt"
	"html/template"

	"github.com/bgraf/gpxview/res"
)

func ReadTemplates() (*template.Template, error) {
	templates, err := template.New("").Funcs(makeTemplateFuncmap()).ParseFS(res.Templates, "templates/*")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}
