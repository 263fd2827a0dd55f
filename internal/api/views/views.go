// Package views renderiza as páginas HTML do dashboard.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	Landing    = "landing"
	Ridership  = "ridership"
	CaseCounts = "case_counts"
	Error      = "error"
)

// Data é o que cada template recebe; Page traz o valor da página
type Data struct {
	Title string
	Nav   string
	Page  any

	SeriesURL   string
	RecoveryURL string
	WeekdayURL  string
}

type Views struct {
	pages map[string]*template.Template
}

func New() (*Views, error) {
	funcs := template.FuncMap{
		"contains": func(list []string, value string) bool {
			return slices.Contains(list, value)
		},
	}

	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("views: error parsing layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{Landing, Ridership, CaseCounts, Error} {
		base, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("views: error cloning layout: %w", err)
		}

		page, err := base.ParseFS(templatesFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("views: error parsing %s: %w", name, err)
		}
		pages[name] = page
	}

	return &Views{pages: pages}, nil
}

// Render escreve a página direto em w; quem chama deve usar um buffer se
// precisar trocar o status depois de uma falha
func (v *Views) Render(w io.Writer, name string, data Data) error {
	page, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("views: unknown page %q", name)
	}

	if err := page.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("views: error rendering %s: %w", name, err)
	}
	return nil
}
