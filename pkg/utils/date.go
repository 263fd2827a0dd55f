package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts são os formatos aceitos para datas vindas das fontes, em ordem de tentativa
var DateLayouts = []string{
	"2006-01-02T15:04:05.000", // floating timestamp do Socrata
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02",
	"01/02/2006",
}

func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range DateLayouts {
		if date, err := time.Parse(layout, dateStr); err == nil {
			return date, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
