package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dayflow/internal/app"
	"github.com/ramanasai/dayflow/internal/config"
	"github.com/ramanasai/dayflow/internal/engine"
	"github.com/ramanasai/dayflow/internal/notify"
	"github.com/ramanasai/dayflow/internal/schedule"
	"github.com/ramanasai/dayflow/internal/store"
	"github.com/ramanasai/dayflow/internal/utils"
	"github.com/ramanasai/dayflow/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "dayflow",
	Short:   "Personal daily planning & habit tracking",
	Version: version.GetVersion(),
}

func Execute() error { return rootCmd.Execute() }

func init() {
	cfg, _ := config.Load()

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cfg.Reminder.Enabled && os.Getenv("DAYFLOW_NO_REMINDER") != "1" {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			r := schedule.New(cfg,
				func() {
					title, msg := notify.FormatEveningPrompt(pendingToday(cfg))
					_ = notify.Info(title, msg)
				},
				func() bool {
					pending, rated := pendingToday(cfg)
					return pending == 0 && rated
				})
			go r.Run(ctx)
			// We intentionally don't store cancel globally; on process exit, signal cancels
			_ = cancel
		}
		return nil
	}

	rootCmd.AddCommand(objectiveCmd, taskCmd, todoCmd, planCmd, trackCmd,
		rateCmd, shopCmd, progressCmd, summaryCmd, exportCmd, importCmd,
		clearCmd, settingsCmd, tuiCmd)
}

// openApp opens the configured store and loads the document. The caller must
// Close the returned store.
func openApp() (*app.App, store.Store, error) {
	cfg, _ := config.Load()
	st, err := store.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.Open(st)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}
	return a, st, nil
}

// pendingToday counts today's open todos and whether the day is rated, for
// the reminder message. Failures degrade to a generic prompt.
func pendingToday(cfg config.Config) (int, bool) {
	st, err := store.Open(cfg.Storage.Backend, cfg.Storage.Dir)
	if err != nil {
		return 0, false
	}
	defer st.Close()
	a, err := app.Open(st)
	if err != nil {
		return 0, false
	}
	pending := 0
	for _, todo := range a.TodosFor(a.Today()) {
		if !todo.IsCompleted {
			pending++
		}
	}
	rating := a.Doc().Ratings[a.Today()]
	return pending, rating != nil && len(rating.Scores) > 0
}

func newRenderer() *utils.Renderer {
	rc := utils.DefaultRenderConfig()
	if noColor {
		rc.Color = false
	}
	if format != "" {
		rc.Format = utils.OutputFormat(format)
	}
	return utils.NewRenderer(rc)
}

var (
	noColor bool
	format  string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Output format: default|json|quiet")
}

// taskNamer resolves task ids to display names, falling back to a shortened
// id for dangling references.
func taskNamer(a *app.App) func(string) string {
	return func(id string) string {
		if task, ok := a.Doc().TaskByID(id); ok {
			return task.Name
		}
		if len(id) > 8 {
			return id[:8]
		}
		return id
	}
}

// parseDateFlag resolves a --date flag value, defaulting to today.
func parseDateFlag(a *app.App, value string) (string, error) {
	if value == "" {
		return a.Today(), nil
	}
	return utils.ParseDateKey(value, a.Now().Location())
}

// timeFromKey turns a YYYY-MM-DD key back into a time in ref's location.
func timeFromKey(key string, ref time.Time) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", key, ref.Location())
}

// windowFor builds the progress window selected by the week/month flags.
func windowFor(a *app.App, week, month bool, date string) (engine.Window, string) {
	t := a.Now()
	if date != "" {
		if parsed, err := utils.ParseDateKey(date, t.Location()); err == nil {
			t, _ = timeFromKey(parsed, t)
		}
	}
	switch {
	case week:
		return engine.WeekWindow(t), "this week"
	case month:
		return engine.MonthWindow(t), "this month"
	default:
		w := engine.DayWindow(t)
		return w, w.Start.Format("2006-01-02")
	}
}
