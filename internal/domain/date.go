package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Date é uma data de calendário que pode estar ausente (linha com data inválida)
type Date struct {
	civil.Date
	Valid bool
}

func DateOf(t time.Time) Date {
	return Date{Date: civil.DateOf(t), Valid: true}
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Date: civil.Date{Year: year, Month: month, Day: day}, Valid: true}
}

// Time retorna a meia-noite UTC da data
func (d Date) Time() time.Time {
	return d.Date.In(time.UTC)
}

// IsWeekend considera sábado e domingo como fim de semana
func (d Date) IsWeekend() bool {
	wd := d.Time().Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Date.String() + `"`), nil
}

func (d Date) String() string {
	if !d.Valid {
		return "NaT"
	}
	return d.Date.String()
}
