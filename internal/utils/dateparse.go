package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/ramanasai/dayflow/internal/model"
)

// ParseDateKey parses natural language and common date formats into a
// YYYY-MM-DD document key.
func ParseDateKey(input string, loc *time.Location) (string, error) {
	input = strings.TrimSpace(strings.ToLower(input))
	now := time.Now().In(loc)

	switch input {
	case "", "today":
		return now.Format(model.DateFormat), nil
	case "yesterday":
		return now.AddDate(0, 0, -1).Format(model.DateFormat), nil
	case "tomorrow":
		return now.AddDate(0, 0, 1).Format(model.DateFormat), nil
	}

	formats := []string{
		"2006-01-02",
		"2006/01/02",
		"02.01.2006",
		"Jan 2, 2006",
		"2 Jan 2006",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, input, loc); err == nil {
			return t.Format(model.DateFormat), nil
		}
	}
	return "", fmt.Errorf("unable to parse date: %s", input)
}

// ParseClock parses "HH:MM" into minutes from midnight. A bare "HH" works
// too; "24:00" is allowed as an end-of-day boundary.
func ParseClock(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "24:00" || input == "24" {
		return 24 * 60, nil
	}
	for _, format := range []string{"15:04", "15"} {
		if t, err := time.Parse(format, input); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unable to parse time: %s", input)
}
