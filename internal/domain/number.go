package domain

import (
	"strconv"
)

// Number é um valor numérico que pode estar ausente. O marcador de ausência
// é distinto de zero e vira null em JSON.
type Number struct {
	Value float64
	Valid bool
}

func Num(v float64) Number {
	return Number{Value: v, Valid: true}
}

func Missing() Number {
	return Number{}
}

// Scale multiplica o valor preservando a ausência
func (n Number) Scale(factor float64) Number {
	if !n.Valid {
		return n
	}
	return Num(n.Value * factor)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, n.Value, 'f', -1, 64), nil
}

func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Missing()
		return nil
	}

	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}

	*n = Num(v)
	return nil
}

func (n Number) String() string {
	if !n.Valid {
		return "NaN"
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}
