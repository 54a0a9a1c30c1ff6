package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dayflow/internal/engine"
	"github.com/ramanasai/dayflow/internal/utils"
)

var (
	progressWeek  bool
	progressMonth bool
	progressDate  string
)

// progressCmd reports actual-vs-target standing for every task with a goal,
// over a day, week or month window, plus lifetime totals where configured.
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show target progress per task",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		w, label := windowFor(a, progressWeek, progressMonth, progressDate)
		doc := a.Doc()
		var rows []utils.ProgressRow
		for _, task := range doc.Tasks {
			if task.Targets == nil {
				continue
			}
			row := utils.ProgressRow{
				Task:     task,
				Windowed: engine.TaskProgress(task, doc.Records, w),
			}
			if task.Targets.TotalValue != nil {
				row.TotalActual, row.TotalPct = engine.TotalProgress(task, doc.Records, doc.Todos)
				row.HasTotal = true
			}
			rows = append(rows, row)
		}
		fmt.Print(newRenderer().RenderProgress(label, rows))
		return nil
	},
}

func init() {
	progressCmd.Flags().BoolVarP(&progressWeek, "week", "w", false, "ISO week window")
	progressCmd.Flags().BoolVarP(&progressMonth, "month", "m", false, "Calendar month window")
	progressCmd.Flags().StringVarP(&progressDate, "date", "d", "", "Anchor date (default today)")
}
