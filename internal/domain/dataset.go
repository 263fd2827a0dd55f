package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// DatasetSpec descreve como buscar e limpar um dataset remoto
type DatasetSpec struct {
	Name           string
	URL            string
	OrderBy        string
	Params         url.Values
	PageSize       int
	SinglePage     bool
	DateField      string
	NumericColumns []string
}

// Signature identifica os argumentos de carga do dataset; usada como chave de cache
func (d DatasetSpec) Signature() string {
	return fmt.Sprintf("%s|%s|order=%s|limit=%d|single=%t|params=%s|date=%s|numeric=%s",
		d.Name,
		d.URL,
		d.OrderBy,
		d.PageSize,
		d.SinglePage,
		d.Params.Encode(), // Encode ordena as chaves
		d.DateField,
		strings.Join(d.NumericColumns, ","),
	)
}
