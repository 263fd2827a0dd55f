package dashboarding

import (
	"context"

	"github.com/advanced-computing/bouncing-penguin/internal/domain"
)

// TableLoader é a dependência de acesso a dados das páginas
type TableLoader interface {
	Load(ctx context.Context, spec domain.DatasetSpec) (*domain.Table, error)
}

type Dashboard interface {
	Landing() domain.LandingPage
	Ridership(ctx context.Context, selection domain.RidershipSelection) (*domain.RidershipPage, error)
	CaseCounts(ctx context.Context) (*domain.CaseCountPage, error)

	// Datasets lista os datasets usados pelas páginas, para aquecimento do cache
	Datasets() []domain.DatasetSpec
}
