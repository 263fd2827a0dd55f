package dashboarding

import (
	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
)

const (
	RidershipDataset = "ridership"
	CaseCountDataset = "case_count"

	ridershipDateField = "date"
	caseCountDateField = "date_of_interest"
	caseCountColumn    = "case_count"

	weekdayColumn = "subways_total_estimated_ridership"
)

var ridershipColumns = []string{
	"subways_total_estimated_ridership",
	"subways_pct_of_comparable_pre_pandemic_day",
	"buses_total_estimated_ridership",
	"buses_pct_of_comparable_pre_pandemic_day",
	"lirr_total_estimated_ridership",
	"lirr_pct_of_comparable_pre_pandemic_day",
	"metro_north_total_estimated_ridership",
	"metro_north_pct_of_comparable_pre_pandemic_day",
}

// Totais diários por serviço, na ordem em que aparecem no formulário
var ridershipMetrics = []domain.ServiceMetric{
	{Name: "Subways", Column: "subways_total_estimated_ridership", Scale: 1},
	{Name: "Buses", Column: "buses_total_estimated_ridership", Scale: 1},
	{Name: "LIRR", Column: "lirr_total_estimated_ridership", Scale: 1},
	{Name: "Metro-North", Column: "metro_north_total_estimated_ridership", Scale: 1},
}

// Fração do dia comparável pré-pandemia; Recovery converte para porcentagem
var recoveryMetrics = []domain.ServiceMetric{
	{Name: "Subways", Column: "subways_pct_of_comparable_pre_pandemic_day", Scale: 100},
	{Name: "Buses", Column: "buses_pct_of_comparable_pre_pandemic_day", Scale: 100},
	{Name: "LIRR", Column: "lirr_pct_of_comparable_pre_pandemic_day", Scale: 100},
	{Name: "Metro-North", Column: "metro_north_pct_of_comparable_pre_pandemic_day", Scale: 100},
}

const (
	caseCountSeries   = "NYC"
	caseCountCategory = "City"
)

var caseCountMetrics = []domain.ServiceMetric{
	{Name: caseCountSeries, Column: caseCountColumn, Scale: 1},
}

var defaultSelection = []string{"Subways"}

func RidershipSpec(cfg *config.Config) domain.DatasetSpec {
	return domain.DatasetSpec{
		Name:           RidershipDataset,
		URL:            cfg.Ridership.URL,
		OrderBy:        cfg.Ridership.Order,
		PageSize:       cfg.Socrata.PageSize,
		DateField:      ridershipDateField,
		NumericColumns: ridershipColumns,
	}
}

// CaseCountSpec é lido em uma única página, como na fonte original
func CaseCountSpec(cfg *config.Config) domain.DatasetSpec {
	return domain.DatasetSpec{
		Name:           CaseCountDataset,
		URL:            cfg.CaseCount.URL,
		OrderBy:        cfg.CaseCount.Order,
		PageSize:       cfg.Socrata.PageSize,
		SinglePage:     true,
		DateField:      caseCountDateField,
		NumericColumns: []string{caseCountColumn},
	}
}

// ServiceNames devolve as opções do seletor de serviços
func ServiceNames() []string {
	names := make([]string, len(ridershipMetrics))
	for i, m := range ridershipMetrics {
		names[i] = m.Name
	}
	return names
}
