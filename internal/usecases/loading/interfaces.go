package loading

import (
	"context"

	"github.com/advanced-computing/bouncing-penguin/internal/domain"
)

// Loader entrega datasets limpos, com cache por assinatura do dataset
type Loader interface {
	// Load devolve a Table do cache quando válida; senão busca, limpa e guarda
	Load(ctx context.Context, spec domain.DatasetSpec) (*domain.Table, error)

	// Refresh ignora o cache, busca de novo e substitui a entrada
	Refresh(ctx context.Context, spec domain.DatasetSpec) (*domain.Table, error)
}
