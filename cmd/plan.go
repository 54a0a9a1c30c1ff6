package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dayflow/internal/app"
	"github.com/ramanasai/dayflow/internal/model"
)

var (
	planDate       string
	clearRecurring bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan hour buckets",
}

var planSetCmd = &cobra.Command{
	Use:   "set [hour] [task]",
	Short: "Plan a task into an hour of a specific day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, planDate)
		if err != nil {
			return err
		}
		hour, err := parseHour(args[0])
		if err != nil {
			return err
		}
		return a.PlanHour(date, hour, resolveTask(a, args[1]))
	},
}

var planClearCmd = &cobra.Command{
	Use:   "clear [hour] [task]",
	Short: "Remove a task (or everything) from a planned hour",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, planDate)
		if err != nil {
			return err
		}
		hour, err := parseHour(args[0])
		if err != nil {
			return err
		}
		taskID := ""
		if len(args) > 1 {
			taskID = resolveTask(a, args[1])
		}
		return a.UnplanHour(date, hour, taskID)
	},
}

var planRecurringCmd = &cobra.Command{
	Use:   "recurring [hour] [task]",
	Short: "Add a task to the recurring hour template (--clear to remove)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		hour, err := parseHour(args[0])
		if err != nil {
			return err
		}
		taskID := ""
		if len(args) > 1 {
			taskID = resolveTask(a, args[1])
		}
		if clearRecurring {
			return a.ClearRecurringHour(hour, taskID)
		}
		if taskID == "" {
			return fmt.Errorf("a task is required")
		}
		return a.SetRecurringHour(hour, taskID)
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective day plan (specific plus recurring) and records",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, planDate)
		if err != nil {
			return err
		}
		fmt.Print(newRenderer().RenderDayGrid(date, a.EffectivePlan(date), recordedOrEmpty(a, date), taskNamer(a)))
		return nil
	},
}

// recordedOrEmpty returns a date's actual records without creating the day.
func recordedOrEmpty(a *app.App, date string) model.DayData {
	if day := a.Doc().Records[date]; day != nil && day.Hours != nil {
		return *day
	}
	return model.DayData{Hours: map[int][]string{}}
}

func parseHour(s string) (int, error) {
	hour, err := strconv.Atoi(s)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour must be 0..23, got %q", s)
	}
	return hour, nil
}

func init() {
	planRecurringCmd.Flags().BoolVar(&clearRecurring, "clear", false, "Remove instead of add")
	for _, c := range []*cobra.Command{planSetCmd, planClearCmd, planShowCmd} {
		c.Flags().StringVarP(&planDate, "date", "d", "", "Date (today, tomorrow, YYYY-MM-DD)")
	}
	planCmd.AddCommand(planSetCmd, planClearCmd, planRecurringCmd, planShowCmd)
}
