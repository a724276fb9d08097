package utils

import "time"

const (
	FechaISO     = "2006-01-02"
	FechaDisplay = "02/01/2006"
)

// FormatFecha renders a date as dd/mm/yyyy, the format the list and detail
// endpoints serve for birth dates.
func FormatFecha(t time.Time) string {
	return t.UTC().Format(FechaDisplay)
}

// ParseFechaISO parses a yyyy-mm-dd date
func ParseFechaISO(s string) (time.Time, error) {
	return time.Parse(FechaISO, s)
}

// ParseFechaDisplay parses a dd/mm/yyyy date back to a time
func ParseFechaDisplay(s string) (time.Time, error) {
	return time.Parse(FechaDisplay, s)
}
