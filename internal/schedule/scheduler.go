// Package schedule drives the evening review reminder: fire once per
// configured workday at the configured time, unless the day is already
// closed out.
package schedule

import (
	"context"
	"time"

	"github.com/ramanasai/dayflow/internal/config"
	"github.com/ramanasai/dayflow/internal/model"
)

// Reminder fires a callback at the configured time of day. A skip gate is
// consulted at fire time so a day that is already fully rated with no open
// todos stays quiet.
type Reminder struct {
	cfg  config.Config
	now  func() time.Time
	fire func()
	skip func() bool
}

func New(cfg config.Config, fire func(), skip func() bool) *Reminder {
	return &Reminder{cfg: cfg, now: time.Now, fire: fire, skip: skip}
}

var shortDays = map[string]time.Weekday{
	"Sun": time.Sunday, "Mon": time.Monday, "Tue": time.Tuesday,
	"Wed": time.Wednesday, "Thu": time.Thursday, "Fri": time.Friday,
	"Sat": time.Saturday,
}

// Next returns the first reminder instant strictly after now: the configured
// clock time, on a configured workday, skipping listed holidays. An empty
// workday list means every day.
func (r *Reminder) Next(now time.Time) time.Time {
	loc := r.cfg.Location()
	now = now.In(loc)

	hour, min := 21, 0
	if t, err := time.ParseInLocation("15:04", r.cfg.Reminder.Time, loc); err == nil {
		hour, min = t.Hour(), t.Minute()
	}

	workdays := map[time.Weekday]bool{}
	for _, d := range r.cfg.Reminder.Workdays {
		if wd, ok := shortDays[d]; ok {
			workdays[wd] = true
		}
	}
	holidays := map[string]bool{}
	for _, h := range r.cfg.Reminder.Holidays {
		holidays[h] = true
	}

	cand := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	if !cand.After(now) {
		cand = cand.AddDate(0, 0, 1)
	}
	for (len(workdays) > 0 && !workdays[cand.Weekday()]) ||
		holidays[cand.Format(model.DateFormat)] {
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// Run blocks until ctx is canceled, firing at each Next instant.
func (r *Reminder) Run(ctx context.Context) {
	t := time.NewTimer(time.Until(r.Next(r.now())))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if r.skip == nil || !r.skip() {
				r.fire()
			}
			t.Reset(time.Until(r.Next(r.now())))
		}
	}
}
