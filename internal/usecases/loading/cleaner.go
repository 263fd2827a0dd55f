package loading

import (
	"fmt"
	"strings"

	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Clean converte registros brutos em uma Table. A coluna de data é obrigatória;
// colunas numéricas declaradas que não aparecem em nenhum registro são ignoradas.
// Nenhuma linha é descartada: valores inválidos viram o marcador de ausência.
func Clean(records []domain.RawRecord, dateField string, numericColumns []string) (*domain.Table, error) {
	if len(records) == 0 {
		return domain.NewTable(dateField, []domain.Date{}), nil
	}

	dates, err := cleanDates(records, dateField)
	if err != nil {
		return nil, err
	}

	table := domain.NewTable(dateField, dates)

	for _, column := range numericColumns {
		if !anyHas(records, column) {
			logrus.WithField("column", column).Debug("loading: numeric column absent from source, skipping")
			continue
		}

		values := make([]domain.Number, len(records))
		for i, record := range records {
			if v, ok := utils.ToFloat(record[column]); ok {
				values[i] = domain.Num(v)
			} else {
				values[i] = domain.Missing()
			}
		}
		table.SetColumn(column, values)
	}

	return table, nil
}

func cleanDates(records []domain.RawRecord, dateField string) ([]domain.Date, error) {
	if !anyHas(records, dateField) {
		return nil, fmt.Errorf("%w: %q", ErrDateFieldMissing, dateField)
	}

	var (
		dates     = make([]domain.Date, len(records))
		parsed    int
		nonEmpty  int
		firstFail string
	)
	for i, record := range records {
		raw, ok := record[dateField].(string)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		nonEmpty++

		t, err := utils.ParseDate(raw)
		if err != nil {
			if firstFail == "" {
				firstFail = raw
			}
			continue
		}

		dates[i] = domain.DateOf(t)
		parsed++
	}

	if nonEmpty > 0 && parsed == 0 {
		return nil, fmt.Errorf("%w: %q (first value %q)", ErrDateFieldUnparsable, dateField, firstFail)
	}

	if parsed < len(records) {
		logrus.WithFields(logrus.Fields{
			"field":   dateField,
			"missing": len(records) - parsed,
		}).Debug("loading: rows with missing or invalid date")
	}

	return dates, nil
}

func anyHas(records []domain.RawRecord, field string) bool {
	for _, record := range records {
		if record.Has(field) {
			return true
		}
	}
	return false
}
