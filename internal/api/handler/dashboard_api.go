package handler

import (
	"net/http"

	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding"
)

// GetRidership devolve a página de ridership com as ChartRequests em JSON,
// para quem quiser desenhar os gráficos do próprio lado
func GetRidership(dashboard dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := dashboard.Ridership(r.Context(), parseSelection(r.URL.Query()))
		if err != nil {
			writeClassifiedError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, page)
	}
}

func GetCaseCounts(dashboard dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := dashboard.CaseCounts(r.Context())
		if err != nil {
			writeClassifiedError(r.Context(), w, err)
			return
		}

		writeJSON(r.Context(), w, http.StatusOK, page)
	}
}

func GetLanding(dashboard dashboarding.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, dashboard.Landing())
	}
}
