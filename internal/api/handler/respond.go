package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/charting"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/loading"
	"github.com/advanced-computing/bouncing-penguin/pkg/apiErrors"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	serviceParam   = "service"
	submittedParam = "submitted"
)

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ForContext(ctx).WithError(err).Warn("http: failed to encode response")
	}
}

// classify traduz um erro das páginas em código da API e mensagem para o usuário
func classify(err error) (string, string) {
	var loadErr *loading.LoadError

	switch {
	case errors.Is(err, charting.ErrUnknownService):
		return apiErrors.ErrInvalidRequest, err.Error()
	case errors.As(err, &loadErr):
		return loadErr.Code, "The " + loadErr.Dataset + " data source could not be loaded. Please try again later."
	default:
		return apiErrors.ErrInternalServer, "Unexpected error while building the page."
	}
}

func writeClassifiedError(ctx context.Context, w http.ResponseWriter, err error) {
	code, message := classify(err)
	log.ForContext(ctx).WithFields(log.Fields{
		"code":  code,
		"error": err.Error(),
	}).Error("http: request failed")

	apiErrors.WriteError(w, code, message, nil)
}

// parseSelection lê os serviços do formulário; sem submitted=1 o default é usado
func parseSelection(query url.Values) domain.RidershipSelection {
	return domain.RidershipSelection{
		Services:  query[serviceParam],
		Submitted: query.Get(submittedParam) == "1",
	}
}

func selectionQuery(selection domain.RidershipSelection) string {
	if !selection.Submitted {
		return ""
	}

	query := url.Values{}
	for _, service := range selection.Services {
		query.Add(serviceParam, service)
	}
	query.Set(submittedParam, "1")
	return "?" + query.Encode()
}
