package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/dayflow/internal/config"
)

func weekdayConfig() config.Config {
	cfg := config.Default()
	cfg.Reminder.Time = "21:00"
	cfg.Reminder.Workdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	cfg.Reminder.Timezone = "UTC"
	return cfg
}

func at(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", s)
	require.NoError(t, err)
	return parsed
}

func TestNextSameDayBeforeReminderTime(t *testing.T) {
	r := New(weekdayConfig(), nil, nil)
	// 2026-03-06 is a Friday
	next := r.Next(at(t, "2026-03-06 20:00"))
	assert.Equal(t, at(t, "2026-03-06 21:00"), next)
}

func TestNextSkipsWeekend(t *testing.T) {
	r := New(weekdayConfig(), nil, nil)
	next := r.Next(at(t, "2026-03-06 22:00"))
	assert.Equal(t, at(t, "2026-03-09 21:00"), next, "Saturday and Sunday are not workdays")

	// exactly at the reminder instant moves to the next occurrence
	next = r.Next(at(t, "2026-03-06 21:00"))
	assert.Equal(t, at(t, "2026-03-09 21:00"), next)
}

func TestNextSkipsHolidays(t *testing.T) {
	cfg := weekdayConfig()
	cfg.Reminder.Holidays = []string{"2026-03-09"}
	r := New(cfg, nil, nil)
	next := r.Next(at(t, "2026-03-06 22:00"))
	assert.Equal(t, at(t, "2026-03-10 21:00"), next)
}

func TestNextEmptyWorkdaysMeansEveryDay(t *testing.T) {
	cfg := weekdayConfig()
	cfg.Reminder.Workdays = nil
	r := New(cfg, nil, nil)
	next := r.Next(at(t, "2026-03-07 10:00"))
	assert.Equal(t, at(t, "2026-03-07 21:00"), next, "Saturday fires when no workdays are configured")
}

func TestNextFallsBackOnUnparseableTime(t *testing.T) {
	cfg := weekdayConfig()
	cfg.Reminder.Time = "late"
	r := New(cfg, nil, nil)
	next := r.Next(at(t, "2026-03-06 10:00"))
	assert.Equal(t, at(t, "2026-03-06 21:00"), next)
}
