package loading

import (
	"errors"
	"fmt"
)

// Erros da limpeza e da carga de datasets
var (
	ErrDateFieldMissing    = errors.New("date field not present in any record")
	ErrDateFieldUnparsable = errors.New("date field could not be parsed in any record")
	ErrFetchDataset        = errors.New("error fetching dataset")
)

// LoadError é um erro de carga com o dataset envolvido e o código da API
type LoadError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Dataset string
	Details string
}

func (e *LoadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("dataset %s: %s (%s)", e.Dataset, e.Err.Error(), e.Details)
	}
	return fmt.Sprintf("dataset %s: %s", e.Dataset, e.Err.Error())
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func NewLoadError(err error, code string, dataset string, details string) *LoadError {
	return &LoadError{
		Err:     err,
		Code:    code,
		Dataset: dataset,
		Details: details,
	}
}
