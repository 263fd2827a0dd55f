package handler

import (
	"bytes"
	"net/http"

	"github.com/advanced-computing/bouncing-penguin/internal/api/views"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding"
	"github.com/advanced-computing/bouncing-penguin/pkg/apiErrors"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
)

func LandingPage(dashboard dashboarding.Dashboard, pages *views.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := dashboard.Landing()
		renderPage(w, r, pages, views.Landing, views.Data{
			Title: page.Title,
			Nav:   "home",
			Page:  page,
		})
	}
}

func RidershipPage(dashboard dashboarding.Dashboard, pages *views.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		selection := parseSelection(r.URL.Query())

		page, err := dashboard.Ridership(r.Context(), selection)
		if err != nil {
			renderPageError(w, r, pages, err)
			return
		}

		query := selectionQuery(selection)
		renderPage(w, r, pages, views.Ridership, views.Data{
			Title:       page.Title,
			Nav:         "ridership",
			Page:        page,
			SeriesURL:   "/charts/ridership/" + SeriesChart + query,
			RecoveryURL: "/charts/ridership/" + RecoveryChart,
			WeekdayURL:  "/charts/ridership/" + WeekdayChart,
		})
	}
}

func CaseCountPage(dashboard dashboarding.Dashboard, pages *views.Views) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := dashboard.CaseCounts(r.Context())
		if err != nil {
			renderPageError(w, r, pages, err)
			return
		}

		renderPage(w, r, pages, views.CaseCounts, views.Data{
			Title:     page.Title,
			Nav:       "case-counts",
			Page:      page,
			SeriesURL: "/charts/case-counts/" + SeriesChart,
		})
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, pages *views.Views, name string, data views.Data) {
	renderWithStatus(w, r, pages, name, data, http.StatusOK)
}

// renderPageError mostra a página genérica de falha, sem gráficos parciais
func renderPageError(w http.ResponseWriter, r *http.Request, pages *views.Views, err error) {
	code, message := classify(err)
	log.ForContext(r.Context()).WithFields(log.Fields{
		"code":  code,
		"error": err.Error(),
	}).Error("http: page failed")

	renderWithStatus(w, r, pages, views.Error, views.Data{
		Title: "Data unavailable",
		Page:  message,
	}, apiErrors.StatusFor(code))
}

func renderWithStatus(w http.ResponseWriter, r *http.Request, pages *views.Views, name string, data views.Data, status int) {
	var buf bytes.Buffer
	if err := pages.Render(&buf, name, data); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: failed to render page")
		apiErrors.WriteError(w, apiErrors.ErrRendering, "page could not be rendered", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("http: failed to write page")
	}
}
