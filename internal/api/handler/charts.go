package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/advanced-computing/bouncing-penguin/infrastructure/renderer/gochart"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding"
	"github.com/advanced-computing/bouncing-penguin/pkg/apiErrors"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
	"github.com/julienschmidt/httprouter"
)

const (
	SeriesChart   = "series.svg"
	RecoveryChart = "recovery.svg"
	WeekdayChart  = "weekday.svg"
)

// RidershipChart desenha um dos três gráficos da página de ridership
func RidershipChart(dashboard dashboarding.Dashboard, renderer gochart.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("chart")
		if name != SeriesChart && name != RecoveryChart && name != WeekdayChart {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "unknown chart: "+name, nil)
			return
		}

		page, err := dashboard.Ridership(r.Context(), parseSelection(r.URL.Query()))
		if err != nil {
			writeClassifiedError(r.Context(), w, err)
			return
		}

		var req *domain.ChartRequest
		switch name {
		case SeriesChart:
			req = page.Series
		case RecoveryChart:
			req = page.Recovery
		case WeekdayChart:
			req = page.Weekday
		}

		writeChart(w, r, renderer, req)
	}
}

func CaseCountChart(dashboard dashboarding.Dashboard, renderer gochart.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := dashboard.CaseCounts(r.Context())
		if err != nil {
			writeClassifiedError(r.Context(), w, err)
			return
		}

		writeChart(w, r, renderer, page.Series)
	}
}

func writeChart(w http.ResponseWriter, r *http.Request, renderer gochart.Renderer, req *domain.ChartRequest) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, req); err != nil {
		if errors.Is(err, gochart.ErrEmptyChart) {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "chart has no data to draw", nil)
			return
		}

		log.ForContext(r.Context()).WithError(err).Error("http: failed to render chart")
		apiErrors.WriteError(w, apiErrors.ErrRendering, "chart could not be rendered", nil)
		return
	}

	w.Header().Set("Content-Type", gochart.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if _, err := buf.WriteTo(w); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("http: failed to write chart")
	}
}
