// Package charting transforma Tables limpas nos formatos que os gráficos consomem.
package charting

import (
	"fmt"

	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	WeekdayLabel = "Weekday"
	WeekendLabel = "Weekend"
)

// Select monta a tabela longa (data, categoria, valor) para os serviços escolhidos,
// na ordem da escolha e com duplicados colapsados. Cada categoria ocupa um bloco
// contíguo de linhas. Serviços cuja coluna não existe na Table são omitidos.
func Select(table *domain.Table, metrics []domain.ServiceMetric, selected []string, categoryName, valueName string) (*domain.TidyTable, error) {
	byName := make(map[string]domain.ServiceMetric, len(metrics))
	for _, m := range metrics {
		byName[m.Name] = m
	}

	tidy := &domain.TidyTable{
		CategoryName: categoryName,
		ValueName:    valueName,
		Rows:         make([]domain.TidyRow, 0),
	}

	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		if seen[name] {
			continue
		}
		seen[name] = true

		metric, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownService, name)
		}

		appendMetric(tidy, table, metric)
	}

	return tidy, nil
}

// Recovery monta a série de recuperação de todos os serviços cuja coluna existe,
// convertendo fração em porcentagem
func Recovery(table *domain.Table, metrics []domain.ServiceMetric, categoryName, valueName string) *domain.TidyTable {
	tidy := &domain.TidyTable{
		CategoryName: categoryName,
		ValueName:    valueName,
		Rows:         make([]domain.TidyRow, 0),
	}

	for _, metric := range metrics {
		metric.Scale = 100
		appendMetric(tidy, table, metric)
	}

	return tidy
}

func appendMetric(tidy *domain.TidyTable, table *domain.Table, metric domain.ServiceMetric) {
	values, ok := table.Column(metric.Column)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"service": metric.Name,
			"column":  metric.Column,
		}).Debug("charting: column not available, skipping service")
		return
	}

	scale := metric.Scale
	if scale == 0 {
		scale = 1
	}

	for i, date := range table.Dates {
		tidy.Rows = append(tidy.Rows, domain.TidyRow{
			Date:     date,
			Category: metric.Name,
			Value:    values[i].Scale(scale),
		})
	}
}
