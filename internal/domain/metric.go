package domain

// ServiceMetric liga um nome de exibição a uma coluna da tabela, com um fator
// de escala (1 para totais, 100 para fração → porcentagem)
type ServiceMetric struct {
	Name   string
	Column string
	Scale  float64
}

type Summary struct {
	Rows    int  `json:"rows"`
	MinDate Date `json:"min_date"`
	MaxDate Date `json:"max_date"`
}
