// Package model defines the dayflow document: every entity the planner
// tracks, held together in a single aggregate that is persisted wholesale.
package model

import "time"

// Target modes.
const (
	ModeDuration = "duration"
	ModeCount    = "count"
)

// UncategorizedID is the fallback category for tasks whose objective was
// deleted or never set.
const UncategorizedID = "uncategorized"

// MaxTasksPerHour caps how many task ids an hour bucket may hold. Enforced
// when assigning, not when reading.
const MaxTasksPerHour = 4

// DateFormat is the canonical key format for all per-day maps.
const DateFormat = "2006-01-02"

// Objective is a user-defined life-area category (e.g. "Health").
type Objective struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
}

// Targets quantifies a goal: Value per occurrence, achieved over Frequency
// days, with an optional lifetime ceiling and deadline.
type Targets struct {
	Mode       string   `json:"mode"` // duration | count
	Value      float64  `json:"value"`
	Frequency  int      `json:"frequency"`
	TotalValue *float64 `json:"totalValue,omitempty"`
	Deadline   string   `json:"deadline,omitempty"` // YYYY-MM-DD
}

// Task is a reusable habit template.
type Task struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Category string   `json:"category"`
	Targets  *Targets `json:"targets,omitempty"`
}

// SubTask is a checklist line under a Todo.
type SubTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// Todo is a dated, completable instance of work, optionally linked to a Task
// template via TemplateID.
type Todo struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	ObjectiveID     string     `json:"objectiveId,omitempty"`
	TemplateID      string     `json:"templateId,omitempty"`
	IsFrog          bool       `json:"isFrog"`
	IsCompleted     bool       `json:"isCompleted"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	StartDate       string     `json:"startDate,omitempty"`       // YYYY-MM-DD
	ActualStartDate string     `json:"actualStartDate,omitempty"` // original date before rollover
	SubTasks        []SubTask  `json:"subTasks,omitempty"`
	Targets         *Targets   `json:"targets,omitempty"`
}

// DayData holds one calendar day's hour buckets: hour (0..23) to the task
// ids planned or recorded in that hour.
type DayData struct {
	Hours map[int][]string `json:"hours"`
}

// TimeBlock is a finer-grained minute-range record that gets synchronized
// into the hour buckets of its date.
type TimeBlock struct {
	ID          string `json:"id"`
	TaskID      string `json:"taskId"`
	StartMinute int    `json:"startTime"` // minutes from midnight
	EndMinute   int    `json:"endTime"`
}

// DayRating scores one day across rating dimensions. A dimension absent from
// Scores was not rated; an explicit 0 counts as zero.
type DayRating struct {
	Scores  map[string]int `json:"scores"`
	Comment string         `json:"comment,omitempty"`
}

// RatingItem is a scoring dimension with labels per score value (-2..2).
type RatingItem struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Reasons map[int]string `json:"reasons,omitempty"`
}

// ShopItem is a catalog entry points can be redeemed against.
type ShopItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
	Icon string `json:"icon,omitempty"`
}

// Redemption records a purchase. Name and cost are snapshotted so later
// catalog edits don't rewrite history.
type Redemption struct {
	ID         string `json:"id"`
	ShopItemID string `json:"shopItemId"`
	ItemName   string `json:"itemName"`
	Cost       int    `json:"cost"`
	Date       string `json:"date"` // YYYY-MM-DD
	Timestamp  int64  `json:"timestamp,omitempty"`
}

// ReviewTemplate is a saved prompt for daily/weekly review notes.
type ReviewTemplate struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// RolloverSettings is the global carry-forward policy for overdue todos.
type RolloverSettings struct {
	Enabled bool `json:"enabled"`
	MaxDays int  `json:"maxDays"`
}

// Document is the aggregate root. The whole document is read and written
// atomically on every mutation.
type Document struct {
	Tasks             []Task                 `json:"tasks"`
	Objectives        []Objective            `json:"objectives"`
	CategoryOrder     []string               `json:"categoryOrder"`
	Todos             []Todo                 `json:"todos"`
	Schedule          map[string]*DayData    `json:"schedule"`
	Records           map[string]*DayData    `json:"records"`
	RecurringSchedule map[int][]string       `json:"recurringSchedule"`
	Blocks            map[string][]TimeBlock `json:"timeBlocks"`
	Ratings           map[string]*DayRating  `json:"ratings"`
	RatingItems       []RatingItem           `json:"ratingItems"`
	ShopItems         []ShopItem             `json:"shopItems"`
	Redemptions       []Redemption           `json:"redemptions"`
	ReviewTemplates   []ReviewTemplate       `json:"reviewTemplates"`
	Rollover          *RolloverSettings      `json:"rolloverSettings,omitempty"`
	ThemeColor        string                 `json:"themeColor,omitempty"`
}

// TaskByID looks a task up by id. Dangling ids are normal (deleted tasks keep
// their history), so callers must handle ok=false.
func (d *Document) TaskByID(id string) (Task, bool) {
	for _, t := range d.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// ObjectiveByID looks an objective up by id.
func (d *Document) ObjectiveByID(id string) (Objective, bool) {
	for _, o := range d.Objectives {
		if o.ID == id {
			return o, true
		}
	}
	return Objective{}, false
}

// TodoByID looks a todo up by id and returns a pointer into the document.
func (d *Document) TodoByID(id string) (*Todo, bool) {
	for i := range d.Todos {
		if d.Todos[i].ID == id {
			return &d.Todos[i], true
		}
	}
	return nil, false
}

// ScheduleFor returns the planned DayData for date, creating it (and the
// schedule map itself) if absent.
func (d *Document) ScheduleFor(date string) *DayData {
	if d.Schedule == nil {
		d.Schedule = map[string]*DayData{}
	}
	return ensureDay(d.Schedule, date)
}

// RecordsFor returns the recorded DayData for date, creating it (and the
// records map itself) if absent.
func (d *Document) RecordsFor(date string) *DayData {
	if d.Records == nil {
		d.Records = map[string]*DayData{}
	}
	return ensureDay(d.Records, date)
}

func ensureDay(m map[string]*DayData, date string) *DayData {
	day, ok := m[date]
	if !ok || day == nil {
		day = &DayData{Hours: map[int][]string{}}
		m[date] = day
	}
	if day.Hours == nil {
		day.Hours = map[int][]string{}
	}
	return day
}

// AssignHour adds a task id to an hour bucket, deduplicating and trimming to
// MaxTasksPerHour by evicting the oldest assignment.
func (day *DayData) AssignHour(hour int, taskID string) {
	if hour < 0 || hour > 23 || taskID == "" {
		return
	}
	if day.Hours == nil {
		day.Hours = map[int][]string{}
	}
	ids := day.Hours[hour]
	for _, id := range ids {
		if id == taskID {
			return
		}
	}
	ids = append(ids, taskID)
	if len(ids) > MaxTasksPerHour {
		ids = ids[len(ids)-MaxTasksPerHour:]
	}
	day.Hours[hour] = ids
}

// ClearHour removes a task id from an hour bucket (all ids when taskID is
// empty).
func (day *DayData) ClearHour(hour int, taskID string) {
	if day.Hours == nil {
		return
	}
	if taskID == "" {
		delete(day.Hours, hour)
		return
	}
	ids := day.Hours[hour]
	out := ids[:0]
	for _, id := range ids {
		if id != taskID {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		delete(day.Hours, hour)
	} else {
		day.Hours[hour] = out
	}
}
