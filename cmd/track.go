package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/dayflow/internal/utils"
)

var trackDate string

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Record actual time",
}

var trackSetCmd = &cobra.Command{
	Use:   "set [hour] [task]",
	Short: "Record a task against an hour bucket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, trackDate)
		if err != nil {
			return err
		}
		hour, err := parseHour(args[0])
		if err != nil {
			return err
		}
		return a.RecordHour(date, hour, resolveTask(a, args[1]))
	},
}

var trackClearCmd = &cobra.Command{
	Use:   "clear [hour] [task]",
	Short: "Remove a task (or everything) from a recorded hour",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, trackDate)
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
		return a.UnrecordHour(date, hour, taskID)
	},
}

var trackBlockCmd = &cobra.Command{
	Use:   "block [task] [start] [end]",
	Short: "Record a minute-range block (marks the hours it overlaps)",
	Long: `Examples:
	dayflow track block "Deep work" 09:30 11:15
	dayflow track block Reading 21:00 22:00 --date yesterday`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, trackDate)
		if err != nil {
			return err
		}
		start, err := utils.ParseClock(args[1])
		if err != nil {
			return err
		}
		end, err := utils.ParseClock(args[2])
		if err != nil {
			return err
		}
		block, err := a.AddBlock(date, resolveTask(a, args[0]), start, end)
		if err != nil {
			return err
		}
		fmt.Printf("Block %s recorded: %s %s-%s\n", block.ID[:8], date, args[1], args[2])
		return nil
	},
}

var trackUnblockCmd = &cobra.Command{
	Use:   "unblock [block-id]",
	Short: "Delete a recorded block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, trackDate)
		if err != nil {
			return err
		}
		for _, b := range a.Doc().Blocks[date] {
			if b.ID == args[0] || (len(args[0]) >= 4 && strings.HasPrefix(b.ID, args[0])) {
				return a.DeleteBlock(date, b.ID)
			}
		}
		return fmt.Errorf("block %q not found on %s", args[0], date)
	},
}

func init() {
	for _, c := range []*cobra.Command{trackSetCmd, trackClearCmd, trackBlockCmd, trackUnblockCmd} {
		c.Flags().StringVarP(&trackDate, "date", "d", "", "Date (today, yesterday, YYYY-MM-DD)")
	}
	trackCmd.AddCommand(trackSetCmd, trackClearCmd, trackBlockCmd, trackUnblockCmd)
}
