package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dayflow/internal/model"
)

var (
	taskColor     string
	taskObjective string
	taskMode      string
	taskValue     float64
	taskFrequency int
	taskTotal     float64
	taskDeadline  string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage habit templates",
}

// taskTargets builds a Targets from the flags, or nil when no goal was set.
func taskTargets(cmd *cobra.Command) (*model.Targets, error) {
	if !cmd.Flags().Changed("value") && !cmd.Flags().Changed("total") {
		return nil, nil
	}
	if taskMode != model.ModeDuration && taskMode != model.ModeCount {
		return nil, fmt.Errorf("mode must be %q or %q", model.ModeDuration, model.ModeCount)
	}
	t := &model.Targets{Mode: taskMode, Value: taskValue, Frequency: taskFrequency, Deadline: taskDeadline}
	if cmd.Flags().Changed("total") {
		total := taskTotal
		t.TotalValue = &total
	}
	return t, nil
}

var taskAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a habit template",
	Long: `Examples:
	dayflow task add "Morning run" --objective health
	dayflow task add Reading --value 3.5 --frequency 7        # 3.5h per week
	dayflow task add Pushups --mode count --value 50 --total 5000`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		targets, err := taskTargets(cmd)
		if err != nil {
			return err
		}
		task, err := a.AddTask(strings.Join(args, " "), taskColor, resolveObjective(a, taskObjective), targets)
		if err != nil {
			return err
		}
		fmt.Printf("Task %q added (%s)\n", task.Name, task.ID[:8])
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habit templates grouped by objective",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		doc := a.Doc()
		byCategory := map[string][]model.Task{}
		for _, t := range doc.Tasks {
			byCategory[t.Category] = append(byCategory[t.Category], t)
		}
		categories := append([]string{}, doc.CategoryOrder...)
		categories = append(categories, model.UncategorizedID)
		seen := map[string]bool{}
		for _, cid := range categories {
			if seen[cid] || len(byCategory[cid]) == 0 {
				continue
			}
			seen[cid] = true
			title := cid
			if o, ok := doc.ObjectiveByID(cid); ok {
				title = o.Title
			}
			fmt.Println(title)
			for _, t := range byCategory[cid] {
				line := fmt.Sprintf("  %-24s %s", t.Name, t.ID[:8])
				if t.Targets != nil {
					line += fmt.Sprintf("  %s %.1f/%dd", t.Targets.Mode, t.Targets.Value, t.Targets.Frequency)
					if t.Targets.TotalValue != nil {
						line += fmt.Sprintf(" (lifetime %.0f)", *t.Targets.TotalValue)
					}
				}
				fmt.Println(line)
			}
			delete(byCategory, cid)
		}
		for cid, tasks := range byCategory {
			fmt.Println(cid)
			for _, t := range tasks {
				fmt.Printf("  %-24s %s\n", t.Name, t.ID[:8])
			}
		}
		return nil
	},
}

var taskEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a habit template in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		task, ok := a.Doc().TaskByID(resolveTask(a, args[0]))
		if !ok {
			return fmt.Errorf("task %q not found", args[0])
		}
		if cmd.Flags().Changed("color") {
			task.Color = taskColor
		}
		if cmd.Flags().Changed("objective") {
			task.Category = resolveObjective(a, taskObjective)
		}
		if targets, err := taskTargets(cmd); err != nil {
			return err
		} else if targets != nil {
			task.Targets = targets
		}
		return a.UpdateTask(task)
	},
}

var taskRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a habit template (history is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := a.DeleteTask(resolveTask(a, args[0])); err != nil {
			return err
		}
		fmt.Println("Task deleted.")
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{taskAddCmd, taskEditCmd} {
		c.Flags().StringVarP(&taskColor, "color", "c", "#89B4FA", "Display color")
		c.Flags().StringVarP(&taskObjective, "objective", "o", "", "Objective (id or title)")
		c.Flags().StringVarP(&taskMode, "mode", "m", model.ModeDuration, "Target mode: duration|count")
		c.Flags().Float64VarP(&taskValue, "value", "v", 1, "Target value per occurrence (hours or count)")
		c.Flags().IntVarP(&taskFrequency, "frequency", "f", 1, "Period in days the value is achieved over")
		c.Flags().Float64Var(&taskTotal, "total", 0, "Lifetime goal ceiling")
		c.Flags().StringVar(&taskDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	}
	taskCmd.AddCommand(taskAddCmd, taskListCmd, taskEditCmd, taskRmCmd)
}
