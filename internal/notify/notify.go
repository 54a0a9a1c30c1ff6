package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}

func Done(message string) error {
	return beeep.Alert("Dayflow", message, "")
}

// FormatEveningPrompt builds the daily review reminder. pending is the count
// of incomplete todos for today; rated says whether the day has a rating yet.
func FormatEveningPrompt(pending int, rated bool) (string, string) {
	title := "Daily review"
	switch {
	case pending > 0 && !rated:
		return title, fmt.Sprintf("%d todos still open and today is unrated. Close out your day?", pending)
	case pending > 0:
		return title, fmt.Sprintf("%d todos still open for today.", pending)
	case !rated:
		return title, "Today is unrated. Take a minute to score it?"
	default:
		return title, "All done for today. Nice."
	}
}
