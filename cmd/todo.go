package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dayflow/internal/model"
)

var (
	todoDate      string
	todoObjective string
	todoTemplate  string
	todoMode      string
	todoValue     float64
	todoFrequency int
	todoTotal     float64
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage the to-do list",
}

var todoAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a todo",
	Long: `Examples:
	dayflow todo add "Call the bank"
	dayflow todo add "Morning run" --for "Morning run"      # instance of a template
	dayflow todo add "Practice guitar" --value 1 --frequency 1 --total 50`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, todoDate)
		if err != nil {
			return err
		}
		var targets *model.Targets
		if cmd.Flags().Changed("value") || cmd.Flags().Changed("total") {
			targets = &model.Targets{Mode: todoMode, Value: todoValue, Frequency: todoFrequency}
			if cmd.Flags().Changed("total") {
				total := todoTotal
				targets.TotalValue = &total
			}
		}
		templateID := ""
		if todoTemplate != "" {
			templateID = resolveTask(a, todoTemplate)
		}
		todo, err := a.AddTodo(strings.Join(args, " "), date, resolveObjective(a, todoObjective), templateID, targets)
		if err != nil {
			return err
		}
		fmt.Printf("Todo %q added for %s (%s)\n", todo.Title, todo.StartDate, todo.ID[:8])
		return nil
	},
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		date, err := parseDateFlag(a, todoDate)
		if err != nil {
			return err
		}
		fmt.Print(newRenderer().RenderTodos(date, a.TodosFor(date)))
		return nil
	},
}

var todoDoneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a todo completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		return a.CompleteTodo(resolveTodo(a, args[0]))
	},
}

var todoUndoneCmd = &cobra.Command{
	Use:   "undone [id]",
	Short: "Mark a todo not completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		return a.UncompleteTodo(resolveTodo(a, args[0]))
	},
}

var todoFrogCmd = &cobra.Command{
	Use:   "frog [id]",
	Short: "Mark a todo as the day's top priority",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		return a.SetFrog(resolveTodo(a, args[0]))
	},
}

var todoSubCmd = &cobra.Command{
	Use:   "sub [todo-id] [title|sub-id]",
	Short: "Add a subtask, or toggle one by id",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		todoID := resolveTodo(a, args[0])
		if todo, ok := a.Doc().TodoByID(todoID); ok {
			ref := args[1]
			for _, sub := range todo.SubTasks {
				if sub.ID == ref || strings.HasPrefix(sub.ID, ref) {
					return a.ToggleSubTask(todoID, sub.ID)
				}
			}
		}
		return a.AddSubTask(todoID, strings.Join(args[1:], " "))
	},
}

var todoRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a todo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		return a.DeleteTodo(resolveTodo(a, args[0]))
	},
}

func init() {
	todoAddCmd.Flags().StringVarP(&todoObjective, "objective", "o", "", "Objective (id or title)")
	todoAddCmd.Flags().StringVar(&todoTemplate, "for", "", "Template task this todo is an instance of")
	todoAddCmd.Flags().StringVarP(&todoMode, "mode", "m", model.ModeDuration, "Target mode: duration|count")
	todoAddCmd.Flags().Float64VarP(&todoValue, "value", "v", 1, "Target value")
	todoAddCmd.Flags().IntVarP(&todoFrequency, "frequency", "f", 0, "Period in days (creates a template)")
	todoAddCmd.Flags().Float64Var(&todoTotal, "total", 0, "Lifetime goal (creates a template)")
	for _, c := range []*cobra.Command{todoAddCmd, todoListCmd} {
		c.Flags().StringVarP(&todoDate, "date", "d", "", "Date (today, tomorrow, YYYY-MM-DD)")
	}
	todoCmd.AddCommand(todoAddCmd, todoListCmd, todoDoneCmd, todoUndoneCmd, todoFrogCmd, todoSubCmd, todoRmCmd)
}
