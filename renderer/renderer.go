package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var embedded embed.FS

// templates holds the markdown templates, by file name.
var templates, _ = fs.Sub(embedded, "templates")

var funcs = template.FuncMap{
	"cell": cell,
}

// cell escapes s to be used in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// RenderList renders the collection as a markdown table.
func RenderList(l *List) string {
	return renderTemplate("list", "list.md", nil, l)
}

// RenderGoal renders the detail of a goal, followed by its history.
func RenderGoal(d *Detail) string {
	partials := map[string]string{
		"goal_summary": "goal_summary.md",
		"goal_history": "goal_history.md",
	}
	return renderTemplate("goal", "goal.md", partials, d)
}

// RenderHistory renders only the history of a goal.
func RenderHistory(d *Detail) string {
	return renderTemplate("goal_history", "goal_history.md", nil, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
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
