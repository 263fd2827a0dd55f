package charting

import (
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
)

// WeekdayWeekend calcula a média da coluna em dias úteis e fins de semana,
// sempre nesta ordem. Valores ausentes e linhas sem data ficam de fora; um
// grupo sem valores tem média ausente.
func WeekdayWeekend(table *domain.Table, column string) []domain.GroupMean {
	var weekday, weekend meanAccumulator

	if values, ok := table.Column(column); ok {
		for i, date := range table.Dates {
			if !date.Valid || !values[i].Valid {
				continue
			}
			if date.IsWeekend() {
				weekend.add(values[i].Value)
			} else {
				weekday.add(values[i].Value)
			}
		}
	}

	return []domain.GroupMean{
		{Label: WeekdayLabel, Mean: weekday.mean()},
		{Label: WeekendLabel, Mean: weekend.mean()},
	}
}

// Summarize conta as linhas e acha o intervalo de datas válidas
func Summarize(table *domain.Table) domain.Summary {
	summary := domain.Summary{Rows: table.Len()}
	if table == nil {
		return summary
	}

	for _, date := range table.Dates {
		if !date.Valid {
			continue
		}
		if !summary.MinDate.Valid || date.Before(summary.MinDate.Date) {
			summary.MinDate = date
		}
		if !summary.MaxDate.Valid || date.After(summary.MaxDate.Date) {
			summary.MaxDate = date
		}
	}

	return summary
}

type meanAccumulator struct {
	sum   float64
	count int
}

func (a *meanAccumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *meanAccumulator) mean() domain.Number {
	if a.count == 0 {
		return domain.Missing()
	}
	return domain.Num(a.sum / float64(a.count))
}
