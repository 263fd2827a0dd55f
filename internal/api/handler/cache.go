package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/advanced-computing/bouncing-penguin/internal/cache"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/pkg/apiErrors"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
)

// TableCache é a parte do cache que o status expõe
type TableCache interface {
	Entries() []*cache.Entry[*domain.Table]
	TTL() time.Duration
}

type CacheWarmer interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

type cacheEntryStatus struct {
	Function   string    `json:"function"`
	Args       string    `json:"args"`
	Rows       int       `json:"rows"`
	InsertedAt time.Time `json:"inserted_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type cacheStatus struct {
	TTLSeconds float64            `json:"ttl_seconds"`
	Entries    []cacheEntryStatus `json:"entries"`
	Warmer     map[string]any     `json:"warmer,omitempty"`
}

func GetCacheStatus(tableCache TableCache, warmer CacheWarmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := tableCache.Entries()

		status := cacheStatus{
			TTLSeconds: tableCache.TTL().Seconds(),
			Entries:    make([]cacheEntryStatus, 0, len(entries)),
		}
		for _, entry := range entries {
			status.Entries = append(status.Entries, cacheEntryStatus{
				Function:   entry.Key.Function,
				Args:       entry.Key.Args,
				Rows:       entry.Value.Len(),
				InsertedAt: entry.InsertedAt,
				ExpiresAt:  entry.ExpiresAt,
			})
		}

		if warmer != nil {
			status.Warmer = warmer.GetStatus()
		}

		writeJSON(r.Context(), w, http.StatusOK, status)
	}
}

// WarmCache dispara o aquecimento manual; a resposta não espera a carga terminar
func WarmCache(warmer CacheWarmer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if warmer == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "cache warmer not available", nil)
			return
		}

		if !warmer.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "cache warm already running", nil)
			return
		}

		log.ForContext(r.Context()).Info("http: manual cache warm started")
		writeJSON(r.Context(), w, http.StatusAccepted, map[string]any{
			"message": "cache warm started",
		})
	}
}
