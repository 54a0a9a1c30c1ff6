package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryDate string

// summaryCmd prints one day at a glance: plan vs record, todos, rating and
// points balance.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Daily summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, summaryDate)
		if err != nil {
			return err
		}
		r := newRenderer()
		fmt.Print(r.RenderDayGrid(date, a.EffectivePlan(date), recordedOrEmpty(a, date), taskNamer(a)))
		fmt.Println()
		fmt.Print(r.RenderTodos(date, a.TodosFor(date)))
		fmt.Println()

		done, open := 0, 0
		for _, todo := range a.TodosFor(date) {
			if todo.IsCompleted {
				done++
			} else {
				open++
			}
		}
		fmt.Printf("Todos: %d done, %d open\n", done, open)

		if rating := a.Doc().Ratings[date]; rating != nil && len(rating.Scores) > 0 {
			total := 0
			for _, score := range rating.Scores {
				total += score
			}
			for _, item := range a.Doc().RatingItems {
				score, ok := rating.Scores[item.ID]
				if !ok {
					continue
				}
				label := item.Reasons[score]
				if label != "" {
					fmt.Printf("  %-10s %+d  %s\n", item.Name, score, label)
				} else {
					fmt.Printf("  %-10s %+d\n", item.Name, score)
				}
			}
			fmt.Printf("Day score: %+d", total)
			if rating.Comment != "" {
				fmt.Printf("  (%s)", rating.Comment)
			}
			fmt.Println()
		} else {
			fmt.Println("Day not rated yet.")
		}
		fmt.Printf("Balance: %d pts\n", a.Balance())
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryDate, "date", "d", "", "Date (today, yesterday, YYYY-MM-DD)")
}
