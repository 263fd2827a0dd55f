package loading

import (
	"context"
	"fmt"
	"time"

	"github.com/advanced-computing/bouncing-penguin/infrastructure/integrator/socrata"
	"github.com/advanced-computing/bouncing-penguin/internal/cache"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/pkg/apiErrors"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
)

// CacheFunction identifica o loader nas chaves de cache
const CacheFunction = "loading.Loader.Load"

type Service struct {
	integrator socrata.Integrator
	cache      cache.Cache[*domain.Table]
}

func NewService(integrator socrata.Integrator, tableCache cache.Cache[*domain.Table]) Loader {
	return &Service{
		integrator: integrator,
		cache:      tableCache,
	}
}

func CacheKey(spec domain.DatasetSpec) cache.Key {
	return cache.Key{Function: CacheFunction, Args: spec.Signature()}
}

func (s *Service) Load(ctx context.Context, spec domain.DatasetSpec) (*domain.Table, error) {
	entry, hit, err := s.cache.GetOrLoad(ctx, CacheKey(spec), func(_ context.Context) (*domain.Table, error) {
		// A carga é compartilhada entre chamadores concorrentes; um cliente que
		// desconecta não pode cancelar a busca dos outros
		return s.fetchAndClean(context.WithoutCancel(ctx), spec)
	})
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset":   spec.Name,
		"cache_hit": hit,
		"rows":      entry.Value.Len(),
	}).Debug("loading: dataset ready")

	return entry.Value, nil
}

func (s *Service) Refresh(ctx context.Context, spec domain.DatasetSpec) (*domain.Table, error) {
	table, err := s.fetchAndClean(ctx, spec)
	if err != nil {
		return nil, err
	}

	s.cache.Set(CacheKey(spec), table)
	return table, nil
}

func (s *Service) fetchAndClean(ctx context.Context, spec domain.DatasetSpec) (*domain.Table, error) {
	startTime := time.Now()

	records, err := s.integrator.FetchAll(ctx, spec)
	if err != nil {
		return nil, NewLoadError(fmt.Errorf("%w: %w", ErrFetchDataset, err), apiErrors.ErrExternalService, spec.Name, "")
	}

	table, err := Clean(records, spec.DateField, spec.NumericColumns)
	if err != nil {
		return nil, NewLoadError(err, apiErrors.ErrExternalService, spec.Name, "unexpected source schema")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"dataset":     spec.Name,
		"rows":        table.Len(),
		"columns":     len(table.ColumnNames()),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("loading: dataset fetched and cleaned")

	return table, nil
}
