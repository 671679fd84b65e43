package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderScenario renders the Scenario struct to a markdown string.
func RenderScenario(s *Scenario) string {
	partials := map[string]string{
		"scenario_title":    "scenario_title.md",
		"scenario_warnings": "scenario_warnings.md",
		"scenario_sale":     "scenario_sale.md",
		"scenario_exit":     "scenario_exit.md",
	}
	return renderTemplate("scenario", "scenario.md", partials, s)
}

// RenderSale renders a single sale allocation to a markdown string.
func RenderSale(a *Allocation) string {
	return renderTemplate("sale", "scenario_sale.md", nil, a)
}

// RenderExit renders a single exit allocation to a markdown string.
func RenderExit(a *Allocation) string {
	return renderTemplate("exit", "scenario_exit.md", nil, a)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
