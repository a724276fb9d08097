package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diasConAcentos = map[string]string{
	"lunes":     "Lunes",
	"martes":    "Martes",
	"miercoles": "Miércoles",
	"jueves":    "Jueves",
	"viernes":   "Viernes",
	"sabado":    "Sábado",
	"domingo":   "Domingo",
}

// NormalizeDia strips diacritics and lowercases a weekday name, so that
// "Miércoles" and "Miercoles" both come out as "miercoles".
func NormalizeDia(dia string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, dia)
	if err != nil {
		stripped = dia
	}
	return strings.ToLower(stripped)
}

// FormatDia restores the canonical accented, capitalized form of a weekday.
// Unknown values pass through unchanged.
func FormatDia(dia string) string {
	if formatted, ok := diasConAcentos[NormalizeDia(dia)]; ok {
		return formatted
	}
	return dia
}
