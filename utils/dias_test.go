package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDia(t *testing.T) {
	cases := map[string]string{
		"Lunes":     "lunes",
		"MIÉRCOLES": "miercoles",
		"miércoles": "miercoles",
		"Sábado":    "sabado",
		"sabado":    "sabado",
		"Domingo":   "domingo",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDia(in), "input %q", in)
	}
}

func TestFormatDiaRestoresAccents(t *testing.T) {
	assert.Equal(t, "Miércoles", FormatDia("miercoles"))
	assert.Equal(t, "Sábado", FormatDia("SABADO"))
	assert.Equal(t, "Lunes", FormatDia("lunes"))
}
