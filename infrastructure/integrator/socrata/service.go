package socrata

import (
	"context"
	"time"

	socratadomain "github.com/advanced-computing/bouncing-penguin/infrastructure/integrator/socrata/domain"
	"github.com/advanced-computing/bouncing-penguin/infrastructure/integrator/socrata/socrataclient"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/pkg/metrics"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Integrator interface {
	// FetchAll devolve todos os registros do dataset, escondendo a paginação
	FetchAll(ctx context.Context, spec domain.DatasetSpec) ([]domain.RawRecord, error)
}

type SocrataService struct {
	Client socrataclient.Client
}

func New(client socrataclient.Client) Integrator {
	return &SocrataService{
		Client: client,
	}
}

// FetchAll pede páginas de tamanho fixo com offset crescente até receber uma
// página vazia ou incompleta. Não há limite de páginas: uma fonte que sempre
// devolve páginas cheias faz a memória crescer sem fim, e isso é
// responsabilidade de quem chama.
func (s *SocrataService) FetchAll(ctx context.Context, spec domain.DatasetSpec) ([]domain.RawRecord, error) {
	startTime := time.Now()

	var (
		records []domain.RawRecord
		err     error
	)
	if spec.SinglePage {
		records, err = s.fetchSinglePage(ctx, spec)
	} else {
		records, err = s.fetchAllPages(ctx, spec)
	}

	if err != nil {
		metrics.SourceFetchErrors.WithLabelValues(spec.Name).Inc()
		logrus.WithFields(logrus.Fields{
			"dataset": spec.Name,
			"error":   err.Error(),
		}).Error("socrata: failed to fetch dataset")
		return nil, err
	}

	metrics.SourceFetchDuration.WithLabelValues(spec.Name).Observe(time.Since(startTime).Seconds())

	logrus.WithFields(logrus.Fields{
		"dataset":     spec.Name,
		"records":     len(records),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("socrata: dataset fetched")

	return records, nil
}

func (s *SocrataService) fetchAllPages(ctx context.Context, spec domain.DatasetSpec) ([]domain.RawRecord, error) {
	limit := pageSize(spec)
	all := make([]domain.RawRecord, 0)

	for offset := 0; ; offset += limit {
		page, err := s.Client.GetPage(ctx, socrataclient.PageParams{
			URL:       spec.URL,
			Limit:     limit,
			Offset:    offset,
			Order:     spec.OrderBy,
			Params:    spec.Params,
			Paginated: true,
		})
		metrics.SourcePagesFetched.WithLabelValues(spec.Name).Inc()
		if err != nil {
			return nil, errors.Wrapf(err, "dataset %s: page at offset %d", spec.Name, offset)
		}

		logrus.WithFields(logrus.Fields{
			"dataset": spec.Name,
			"offset":  offset,
			"records": len(page),
		}).Debug("socrata: page received")

		if len(page) == 0 {
			break
		}

		metrics.SourceRecordsFetched.WithLabelValues(spec.Name).Add(float64(len(page)))
		all = append(all, page...)

		// Página incompleta é a última; evita um pedido extra só para receber []
		if len(page) < limit {
			break
		}
	}

	return all, nil
}

func (s *SocrataService) fetchSinglePage(ctx context.Context, spec domain.DatasetSpec) ([]domain.RawRecord, error) {
	page, err := s.Client.GetPage(ctx, socrataclient.PageParams{
		URL:    spec.URL,
		Limit:  pageSize(spec),
		Order:  spec.OrderBy,
		Params: spec.Params,
	})
	metrics.SourcePagesFetched.WithLabelValues(spec.Name).Inc()
	if err != nil {
		return nil, errors.Wrapf(err, "dataset %s: single page", spec.Name)
	}

	metrics.SourceRecordsFetched.WithLabelValues(spec.Name).Add(float64(len(page)))
	if page == nil {
		page = make([]domain.RawRecord, 0)
	}

	return page, nil
}

func pageSize(spec domain.DatasetSpec) int {
	if spec.PageSize > 0 {
		return spec.PageSize
	}
	return socratadomain.DefaultPageSize
}
