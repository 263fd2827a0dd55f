package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ToFloat converte um valor bruto de JSON em float64. Strings numéricas são
// aceitas após trim; qualquer outro valor (texto, nulo, booleano) não converte.
func ToFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)

	switch value := v.(type) {
	case json.Number:
		f, err = value.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(value), 64)
	case float64:
		f = value
	case float32:
		f = float64(value)
	case int:
		f = float64(value)
	case int64:
		f = float64(value)
	default:
		return 0, false
	}

	if err != nil || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
