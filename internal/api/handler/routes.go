package handler

import (
	"net/http"

	"github.com/advanced-computing/bouncing-penguin/infrastructure/renderer/gochart"
	"github.com/advanced-computing/bouncing-penguin/internal/api/handler/router"
	"github.com/advanced-computing/bouncing-penguin/internal/api/views"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Pages(dashboard dashboarding.Dashboard, pages *views.Views) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: LandingPage(dashboard, pages),
		},
		{
			Path:    "/ridership",
			Method:  http.MethodGet,
			Handler: RidershipPage(dashboard, pages),
		},
		{
			Path:    "/case-counts",
			Method:  http.MethodGet,
			Handler: CaseCountPage(dashboard, pages),
		},
	}
}

func Charts(dashboard dashboarding.Dashboard, renderer gochart.Renderer) []router.Route {
	return []router.Route{
		{
			Path:    "/charts/ridership/:chart",
			Method:  http.MethodGet,
			Handler: RidershipChart(dashboard, renderer),
		},
		{
			Path:    "/charts/case-counts/" + SeriesChart,
			Method:  http.MethodGet,
			Handler: CaseCountChart(dashboard, renderer),
		},
	}
}

func Dashboard(dashboard dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/landing",
			Method:  http.MethodGet,
			Handler: GetLanding(dashboard),
		},
		{
			Path:    "/v1/ridership",
			Method:  http.MethodGet,
			Handler: GetRidership(dashboard),
		},
		{
			Path:    "/v1/case-counts",
			Method:  http.MethodGet,
			Handler: GetCaseCounts(dashboard),
		},
	}
}

func Cache(tableCache TableCache, warmer CacheWarmer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cache/status",
			Method:  http.MethodGet,
			Handler: GetCacheStatus(tableCache, warmer),
		},
		{
			Path:    "/v1/cache/warm",
			Method:  http.MethodPost,
			Handler: WarmCache(warmer),
		},
	}
}
