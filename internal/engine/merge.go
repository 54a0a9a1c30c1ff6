// Package engine holds the aggregation core: schedule merging, target
// progress, cumulative totals, rollover and point balances. Everything here
// is a pure function over model values; nothing does I/O and nothing errors.
// Bad input degrades to zero or a no-op.
package engine

import "github.com/ramanasai/dayflow/internal/model"

// MergePlanned builds the effective planned day: for each hour the union of
// the specific-day assignments and the recurring template, deduplicated.
// Specific-day entries come first. Recorded (actual) days are never merged
// with the recurring template.
func MergePlanned(day *model.DayData, recurring map[int][]string) model.DayData {
	out := model.DayData{Hours: map[int][]string{}}
	for hour := 0; hour < 24; hour++ {
		var ids []string
		seen := map[string]bool{}
		if day != nil && day.Hours != nil {
			for _, id := range day.Hours[hour] {
				if id != "" && !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
		for _, id := range recurring[hour] {
			if id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			out.Hours[hour] = ids
		}
	}
	return out
}
