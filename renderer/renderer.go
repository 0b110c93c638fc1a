// Package renderer turns domain records and analytics results into markdown
// reports for the CLI.
package renderer

import "time"

const (
	dayFormat  = "2006-01-02"
	timeFormat = "2006-01-02 15:04"
)

func day(t time.Time) string  { return t.Format(dayFormat) }
func when(t time.Time) string { return t.Format(timeFormat) }

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
