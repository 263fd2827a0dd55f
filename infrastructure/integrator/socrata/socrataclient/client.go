package socrataclient

import (
	"context"
	"net/http"

	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
)

type Client interface {
	GetPage(ctx context.Context, params PageParams) ([]domain.RawRecord, error)
}

type SocrataClient struct {
	httpClient *http.Client
	appToken   string
}

// NewClient cria o cliente da API SODA. Timeout zero mantém o comportamento
// padrão do http.Client (sem limite).
func NewClient(cfg *config.Config) Client {
	return &SocrataClient{
		httpClient: &http.Client{
			Timeout: cfg.Socrata.Timeout,
		},
		appToken: cfg.Socrata.AppToken,
	}
}
