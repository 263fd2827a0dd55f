package utils

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{"floating timestamp", "2020-03-01T00:00:00.000"},
		{"timestamp without millis", "2020-03-01T00:00:00"},
		{"rfc3339", "2020-03-01T00:00:00Z"},
		{"plain date", "2020-03-01"},
		{"us date", "03/01/2020"},
		{"surrounding spaces", "  2020-03-01 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
		})
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "not a date", "2020-13-45"} {
		_, err := ParseDate(input)
		assert.Error(t, err, input)
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
		ok    bool
	}{
		{"numeric string", "1234", 1234, true},
		{"padded string", " 0.87 ", 0.87, true},
		{"json number", json.Number("2435900"), 2435900, true},
		{"float", 12.5, 12.5, true},
		{"int", 3, 3, true},
		{"not available", "N/A", 0, false},
		{"empty string", "", 0, false},
		{"nan string", "NaN", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"nan float", math.NaN(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, a, 8)
	assert.Regexp(t, `^[a-z0-9]+$`, a)
	assert.NotEqual(t, a, b)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 87.12, RoundWithTwoDecimalPlace(87.1234))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
