package parser

import (
	"fmt"
	"time"
)

// periodLayouts are the period-label formats found in Eurostat HICP exports,
// most specific first. Monthly labels resolve to the first day of the month,
// annual labels to January 1st.
var periodLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006M01",
	"Jan 2006",
	"2006",
}

// ParsePeriod parses a period label such as "2020-01", "2015M07" or "2019"
// into a calendar date.
func ParsePeriod(s string) (time.Time, error) {
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized period label %q", s)
}
