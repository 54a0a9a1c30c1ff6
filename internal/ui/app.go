package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ramanasai/dayflow/internal/app"
	"github.com/ramanasai/dayflow/internal/model"
)

type focusPane int
type mode int

const (
	focusHours focusPane = iota
	focusTodos
)

const (
	modeNormal mode = iota
	modeAdd
	modeHelp
)

// Model is the day dashboard: an hour grid on the left (planned vs recorded)
// and the day's todo list on the right.
type Model struct {
	width, height int
	focus         focusPane
	mode          mode

	a    *app.App
	date string

	hourCursor int
	todoCursor int

	addInput textinput.Model

	th     Theme
	status string
}

func New(a *app.App) Model {
	ti := textinput.New()
	ti.Placeholder = "New todo title"
	ti.CharLimit = 120
	ti.Width = 40
	return Model{
		a:          a,
		date:       a.Today(),
		focus:      focusHours,
		hourCursor: time.Now().Hour(),
		addInput:   ti,
		th:         DefaultTheme,
	}
}

func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type tickMsg struct{ now time.Time }

func tickNow() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg { return tickMsg{now: t} })
}

func (m Model) Init() tea.Cmd { return tickNow() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		return m, tickNow()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeHelp {
		m.mode = modeNormal
		return m, nil
	}
	if m.mode == modeAdd {
		switch msg.String() {
		case "esc":
			m.mode = modeNormal
			m.addInput.Reset()
			return m, nil
		case "enter":
			title := strings.TrimSpace(m.addInput.Value())
			if title != "" {
				if _, err := m.a.AddTodo(title, m.date, "", "", nil); err != nil {
					m.status = err.Error()
				}
			}
			m.mode = modeNormal
			m.addInput.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.addInput, cmd = m.addInput.Update(msg)
		return m, cmd
	}

	m.status = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
	case "tab":
		if m.focus == focusHours {
			m.focus = focusTodos
		} else {
			m.focus = focusHours
		}
	case "left", "h":
		m = m.shiftDay(-1)
	case "right", "l":
		m = m.shiftDay(1)
	case "t":
		m.date = m.a.Today()
		m.todoCursor = 0
	case "up", "k":
		if m.focus == focusHours && m.hourCursor > 0 {
			m.hourCursor--
		} else if m.focus == focusTodos && m.todoCursor > 0 {
			m.todoCursor--
		}
	case "down", "j":
		if m.focus == focusHours && m.hourCursor < 23 {
			m.hourCursor++
		} else if m.focus == focusTodos {
			if m.todoCursor < len(m.todos())-1 {
				m.todoCursor++
			}
		}
	case "a":
		m.mode = modeAdd
		return m, m.addInput.Focus()
	case "enter", " ":
		m = m.toggleCurrent()
	case "f":
		if m.focus == focusTodos {
			if todo, ok := m.currentTodo(); ok {
				if err := m.a.SetFrog(todo.ID); err != nil {
					m.status = err.Error()
				}
			}
		}
	}
	return m, nil
}

func (m Model) shiftDay(days int) Model {
	t, err := time.Parse(model.DateFormat, m.date)
	if err != nil {
		return m
	}
	m.date = t.AddDate(0, 0, days).Format(model.DateFormat)
	m.todoCursor = 0
	return m
}

// toggleCurrent marks the selected hour as done (records every planned task,
// or clears records when the hour already has them) or flips the selected
// todo's completion.
func (m Model) toggleCurrent() Model {
	if m.focus == focusTodos {
		todo, ok := m.currentTodo()
		if !ok {
			return m
		}
		var err error
		if todo.IsCompleted {
			err = m.a.UncompleteTodo(todo.ID)
		} else {
			err = m.a.CompleteTodo(todo.ID)
		}
		if err != nil {
			m.status = err.Error()
		}
		return m
	}

	if len(m.recordedHour(m.hourCursor)) > 0 {
		if err := m.a.UnrecordHour(m.date, m.hourCursor, ""); err != nil {
			m.status = err.Error()
		}
		return m
	}
	plan := m.a.EffectivePlan(m.date)
	planned := plan.Hours[m.hourCursor]
	if len(planned) == 0 {
		m.status = "nothing planned for this hour"
		return m
	}
	for _, id := range planned {
		if err := m.a.RecordHour(m.date, m.hourCursor, id); err != nil {
			m.status = err.Error()
			return m
		}
	}
	return m
}

func (m Model) todos() []model.Todo {
	todos := m.a.TodosFor(m.date)
	sort.SliceStable(todos, func(i, j int) bool {
		return todos[i].IsFrog && !todos[j].IsFrog
	})
	return todos
}

func (m Model) currentTodo() (model.Todo, bool) {
	todos := m.todos()
	if m.todoCursor < 0 || m.todoCursor >= len(todos) {
		return model.Todo{}, false
	}
	return todos[m.todoCursor], true
}

func (m Model) recordedHour(hour int) []string {
	if day := m.a.Doc().Records[m.date]; day != nil {
		return day.Hours[hour]
	}
	return nil
}

func (m Model) View() string {
	if m.mode == modeHelp {
		return m.helpView()
	}

	title := m.th.Title.Render("Dayflow  " + m.date)
	balance := m.th.Hint.Render(fmt.Sprintf("balance %d pts", m.a.Balance()))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "   ", balance)

	left := m.hoursView()
	right := m.todosView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	footer := m.th.Hint.Render("tab switch  h/l day  j/k move  enter toggle  a add  f frog  ? help  q quit")
	if m.status != "" {
		footer = m.th.Error.Render(m.status)
	}
	if m.mode == modeAdd {
		footer = m.th.Border.Render(m.addInput.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) hoursView() string {
	plan := m.a.EffectivePlan(m.date)
	var b strings.Builder
	for hour := 6; hour <= 23; hour++ {
		cursor := "  "
		if m.focus == focusHours && hour == m.hourCursor {
			cursor = m.th.Frog.Render("> ")
		}
		planned := m.taskNames(plan.Hours[hour])
		recorded := m.taskNames(m.recordedHour(hour))

		line := fmt.Sprintf("%s%02d  ", cursor, hour)
		switch {
		case len(recorded) > 0:
			line += m.th.Recorded.Render("✓ " + strings.Join(recorded, ", "))
		case len(planned) > 0:
			line += m.th.Planned.Render(strings.Join(planned, ", "))
		default:
			line += m.th.Label.Render("·")
		}
		b.WriteString(line + "\n")
	}
	style := m.th.Border
	if m.focus == focusHours {
		style = style.BorderForeground(lipgloss.Color("#89B4FA"))
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) todosView() string {
	todos := m.todos()
	var b strings.Builder
	b.WriteString(m.th.Label.Render("Todos") + "\n")
	if len(todos) == 0 {
		b.WriteString(m.th.Hint.Render("nothing for this day"))
	}
	for i, todo := range todos {
		cursor := "  "
		if m.focus == focusTodos && i == m.todoCursor {
			cursor = m.th.Frog.Render("> ")
		}
		mark := "[ ]"
		if todo.IsCompleted {
			mark = "[x]"
		}
		title := todo.Title
		if todo.IsFrog {
			title = "🐸 " + title
		}
		line := cursor + mark + " " + title
		if todo.IsCompleted {
			line = cursor + mark + " " + m.th.Done.Render(title)
		}
		b.WriteString(line + "\n")
		for _, sub := range todo.SubTasks {
			subMark := "·"
			if sub.IsCompleted {
				subMark = "✓"
			}
			b.WriteString(m.th.Hint.Render(fmt.Sprintf("      %s %s", subMark, sub.Title)) + "\n")
		}
	}
	style := m.th.Border
	if m.focus == focusTodos {
		style = style.BorderForeground(lipgloss.Color("#89B4FA"))
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) helpView() string {
	rows := []string{
		m.th.Title.Render("Dayflow keys"),
		"",
		"tab        switch between hour grid and todos",
		"h / l      previous / next day",
		"t          jump to today",
		"j / k      move cursor",
		"enter      record planned hour, or toggle todo",
		"a          quick-add a todo for this day",
		"f          mark todo as the day's frog",
		"q          quit",
		"",
		m.th.Hint.Render("any key to close"),
	}
	return m.th.Border.Render(strings.Join(rows, "\n"))
}

func (m Model) taskNames(ids []string) []string {
	var names []string
	for _, id := range ids {
		if task, ok := m.a.Doc().TaskByID(id); ok {
			names = append(names, task.Name)
		} else {
			names = append(names, id)
		}
	}
	return names
}
