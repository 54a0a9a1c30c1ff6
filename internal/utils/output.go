package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/dayflow/internal/engine"
	"github.com/ramanasai/dayflow/internal/model"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{Format: FormatDefault, Width: width, Color: true}
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Hour      lipgloss.Style
	Task      lipgloss.Style
	Objective lipgloss.Style
	Frog      lipgloss.Style
	Done      lipgloss.Style
	Bar       lipgloss.Style
	BarEmpty  lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}
	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.Hour = lipgloss.NewStyle().Faint(true)
		styles.Task = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		styles.Objective = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CBA6F7"))
		styles.Frog = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Done = lipgloss.NewStyle().Faint(true).Strikethrough(true)
		styles.Bar = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.BarEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A"))
		styles.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
		styles.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
	} else {
		plain := lipgloss.NewStyle()
		styles.Title = plain.Bold(true)
		styles.Separator = plain
		styles.Meta = plain
		styles.Hour = plain
		styles.Task = plain
		styles.Objective = plain.Bold(true)
		styles.Frog = plain.Bold(true)
		styles.Done = plain
		styles.Bar = plain
		styles.BarEmpty = plain
		styles.Success = plain
		styles.Error = plain
		styles.Warning = plain
	}
	return styles
}

func (r *Renderer) rule() string {
	n := r.config.Width
	if n > 120 {
		n = 120
	}
	return r.styles.Separator.Render(strings.Repeat("─", n)) + "\n"
}

// ProgressBar renders a fixed-width bar for a 0..100 percentage.
func (r *Renderer) ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent/100*float64(width) + 0.5)
	return r.styles.Bar.Render(strings.Repeat("█", filled)) +
		r.styles.BarEmpty.Render(strings.Repeat("░", width-filled))
}

// RenderTodos renders one day's todo list, frog first.
func (r *Renderer) RenderTodos(date string, todos []model.Todo) string {
	if r.config.Format == FormatJSON {
		b, _ := json.MarshalIndent(todos, "", "  ")
		return string(b) + "\n"
	}
	var builder strings.Builder
	if r.config.Format == FormatQuiet {
		for _, todo := range todos {
			builder.WriteString(todo.Title)
			builder.WriteString("\n")
		}
		return builder.String()
	}

	sorted := append([]model.Todo(nil), todos...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].IsFrog && !sorted[j].IsFrog })

	builder.WriteString(r.styles.Title.Render("Todos"))
	builder.WriteString("  ")
	builder.WriteString(r.styles.Meta.Render(date))
	builder.WriteString("\n")
	builder.WriteString(r.rule())
	if len(sorted) == 0 {
		builder.WriteString(r.styles.Meta.Render("nothing planned"))
		builder.WriteString("\n")
		return builder.String()
	}
	for _, todo := range sorted {
		builder.WriteString(r.renderTodoLine(todo))
	}
	return builder.String()
}

func (r *Renderer) renderTodoLine(todo model.Todo) string {
	var builder strings.Builder
	box := "[ ]"
	if todo.IsCompleted {
		box = "[x]"
	}
	builder.WriteString(r.styles.Meta.Render(box))
	builder.WriteString(" ")
	title := todo.Title
	if todo.IsCompleted {
		title = r.styles.Done.Render(title)
	}
	if todo.IsFrog {
		builder.WriteString(r.styles.Frog.Render("🐸 "))
	}
	builder.WriteString(title)
	builder.WriteString("  ")
	builder.WriteString(r.styles.Meta.Render(shortID(todo.ID)))
	builder.WriteString("\n")
	for _, sub := range todo.SubTasks {
		mark := "·"
		subTitle := sub.Title
		if sub.IsCompleted {
			mark = "✓"
			subTitle = r.styles.Done.Render(subTitle)
		}
		builder.WriteString(fmt.Sprintf("      %s %s  %s\n", mark, subTitle, r.styles.Meta.Render(shortID(sub.ID))))
	}
	return builder.String()
}

// RenderDayGrid renders planned vs recorded hour buckets side by side. Hours
// with nothing on either side are skipped.
func (r *Renderer) RenderDayGrid(date string, planned, recorded model.DayData, taskName func(string) string) string {
	var builder strings.Builder
	builder.WriteString(r.styles.Title.Render("Day plan"))
	builder.WriteString("  ")
	builder.WriteString(r.styles.Meta.Render(date))
	builder.WriteString("\n")
	builder.WriteString(r.rule())
	empty := true
	for hour := 0; hour < 24; hour++ {
		plan := planned.Hours[hour]
		rec := recorded.Hours[hour]
		if len(plan) == 0 && len(rec) == 0 {
			continue
		}
		empty = false
		builder.WriteString(r.styles.Hour.Render(fmt.Sprintf("%02d:00", hour)))
		builder.WriteString("  ")
		builder.WriteString(r.styles.Task.Render(joinNames(plan, taskName)))
		if len(rec) > 0 {
			builder.WriteString(r.styles.Meta.Render("  ⇒ "))
			builder.WriteString(r.styles.Success.Render(joinNames(rec, taskName)))
		}
		builder.WriteString("\n")
	}
	if empty {
		builder.WriteString(r.styles.Meta.Render("empty day"))
		builder.WriteString("\n")
	}
	return builder.String()
}

// ProgressRow is one task's standing for RenderProgress.
type ProgressRow struct {
	Task        model.Task      `json:"task"`
	Windowed    engine.Progress `json:"windowed"`
	TotalActual float64         `json:"totalActual,omitempty"`
	TotalPct    float64         `json:"totalPercent,omitempty"`
	HasTotal    bool            `json:"-"`
}

// RenderProgress renders windowed and long-term progress per task.
func (r *Renderer) RenderProgress(label string, rows []ProgressRow) string {
	if r.config.Format == FormatJSON {
		b, _ := json.MarshalIndent(rows, "", "  ")
		return string(b) + "\n"
	}
	var builder strings.Builder
	builder.WriteString(r.styles.Title.Render("Progress"))
	builder.WriteString("  ")
	builder.WriteString(r.styles.Meta.Render(label))
	builder.WriteString("\n")
	builder.WriteString(r.rule())
	for _, row := range rows {
		builder.WriteString(r.styles.Task.Render(fmt.Sprintf("%-20s", clip(row.Task.Name, 20))))
		builder.WriteString(" ")
		builder.WriteString(r.ProgressBar(row.Windowed.Percent, 20))
		builder.WriteString(r.styles.Meta.Render(fmt.Sprintf(" %5.1f%%  %.1f / %.1f",
			row.Windowed.Percent, row.Windowed.Actual, row.Windowed.PeriodGoal)))
		builder.WriteString("\n")
		if row.HasTotal {
			builder.WriteString(strings.Repeat(" ", 21))
			builder.WriteString(r.ProgressBar(row.TotalPct, 20))
			builder.WriteString(r.styles.Meta.Render(fmt.Sprintf(" %5.1f%%  lifetime %.1f", row.TotalPct, row.TotalActual)))
			builder.WriteString("\n")
		}
	}
	if len(rows) == 0 {
		builder.WriteString(r.styles.Meta.Render("no tasks with targets"))
		builder.WriteString("\n")
	}
	return builder.String()
}

// RenderShop renders the catalog with the current balance.
func (r *Renderer) RenderShop(items []model.ShopItem, balance int) string {
	if r.config.Format == FormatJSON {
		b, _ := json.MarshalIndent(map[string]any{"balance": balance, "items": items}, "", "  ")
		return string(b) + "\n"
	}
	var builder strings.Builder
	builder.WriteString(r.styles.Title.Render("Shop"))
	builder.WriteString("  ")
	builder.WriteString(r.styles.Meta.Render(fmt.Sprintf("balance: %d", balance)))
	builder.WriteString("\n")
	builder.WriteString(r.rule())
	for _, item := range items {
		affordable := r.styles.Success
		if item.Cost > balance {
			affordable = r.styles.Error
		}
		builder.WriteString(fmt.Sprintf("%s %-24s %s  %s\n",
			item.Icon, clip(item.Name, 24),
			affordable.Render(fmt.Sprintf("%4d pts", item.Cost)),
			r.styles.Meta.Render(shortID(item.ID))))
	}
	if len(items) == 0 {
		builder.WriteString(r.styles.Meta.Render("catalog is empty"))
		builder.WriteString("\n")
	}
	return builder.String()
}

func (r *Renderer) Successf(format string, args ...any) string {
	return r.styles.Success.Render(fmt.Sprintf(format, args...))
}

func (r *Renderer) Warnf(format string, args ...any) string {
	return r.styles.Warning.Render(fmt.Sprintf(format, args...))
}

func joinNames(ids []string, taskName func(string) string) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, taskName(id))
	}
	return strings.Join(names, ", ")
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
