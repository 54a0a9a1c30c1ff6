package model

// DefaultDocument returns a freshly-initialized document with the bundled
// starter set: a few objectives and tasks so a first run isn't empty, the
// stock rating dimensions, and rollover enabled with a 3-day window.
func DefaultDocument() *Document {
	return &Document{
		Objectives: []Objective{
			{ID: "health", Title: "Health", Color: "#A6E3A1"},
			{ID: "work", Title: "Work", Color: "#89B4FA"},
			{ID: "growth", Title: "Growth", Color: "#CBA6F7"},
		},
		Tasks: []Task{
			{ID: "default-exercise", Name: "Exercise", Color: "#A6E3A1", Category: "health",
				Targets: &Targets{Mode: ModeDuration, Value: 1, Frequency: 1}},
			{ID: "default-reading", Name: "Reading", Color: "#CBA6F7", Category: "growth",
				Targets: &Targets{Mode: ModeDuration, Value: 3.5, Frequency: 7}},
			{ID: "default-deep-work", Name: "Deep work", Color: "#89B4FA", Category: "work"},
		},
		CategoryOrder:     []string{"health", "work", "growth"},
		Todos:             []Todo{},
		Schedule:          map[string]*DayData{},
		Records:           map[string]*DayData{},
		RecurringSchedule: map[int][]string{},
		Blocks:            map[string][]TimeBlock{},
		Ratings:           map[string]*DayRating{},
		RatingItems:       defaultRatingItems(),
		ShopItems:         []ShopItem{},
		Redemptions:       []Redemption{},
		ReviewTemplates:   []ReviewTemplate{},
		Rollover:          &RolloverSettings{Enabled: true, MaxDays: 3},
		ThemeColor:        "#A6E3A1",
	}
}

func defaultRatingItems() []RatingItem {
	return []RatingItem{
		{ID: "focus", Name: "Focus", Reasons: map[int]string{
			-2: "Scattered all day", -1: "Often distracted", 0: "Average",
			1: "Mostly on task", 2: "Deep focus",
		}},
		{ID: "energy", Name: "Energy", Reasons: map[int]string{
			-2: "Exhausted", -1: "Low", 0: "Okay", 1: "Good", 2: "Great",
		}},
		{ID: "mood", Name: "Mood", Reasons: map[int]string{
			-2: "Rough day", -1: "Down", 0: "Neutral", 1: "Good", 2: "Excellent",
		}},
	}
}

// Repair backfills missing top-level collections on a loaded document with
// type-correct empty values so older or hand-edited documents keep working.
// A missing task list gets the bundled defaults; everything else becomes
// empty. Present keys are never altered.
func Repair(d *Document) *Document {
	def := DefaultDocument()
	if d.Tasks == nil {
		d.Tasks = def.Tasks
	}
	if d.Objectives == nil {
		d.Objectives = def.Objectives
	}
	if d.CategoryOrder == nil {
		d.CategoryOrder = []string{}
		for _, o := range d.Objectives {
			d.CategoryOrder = append(d.CategoryOrder, o.ID)
		}
	}
	if d.Todos == nil {
		d.Todos = []Todo{}
	}
	if d.Schedule == nil {
		d.Schedule = map[string]*DayData{}
	}
	if d.Records == nil {
		d.Records = map[string]*DayData{}
	}
	if d.RecurringSchedule == nil {
		d.RecurringSchedule = map[int][]string{}
	}
	if d.Blocks == nil {
		d.Blocks = map[string][]TimeBlock{}
	}
	if d.Ratings == nil {
		d.Ratings = map[string]*DayRating{}
	}
	if d.RatingItems == nil {
		d.RatingItems = def.RatingItems
	}
	if d.ShopItems == nil {
		d.ShopItems = []ShopItem{}
	}
	if d.Redemptions == nil {
		d.Redemptions = []Redemption{}
	}
	if d.ReviewTemplates == nil {
		d.ReviewTemplates = []ReviewTemplate{}
	}
	if d.Rollover == nil {
		d.Rollover = def.Rollover
	}
	return d
}
