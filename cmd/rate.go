package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	rateDate    string
	rateComment string
)

var rateCmd = &cobra.Command{
	Use:   "rate [dimension=score ...]",
	Short: "Rate the day across your dimensions (-2..2)",
	Long: `Examples:
	dayflow rate focus=2 energy=1 --comment "good deep work day"
	dayflow rate mood=-1 --date yesterday
	dayflow rate items list`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateFlag(a, rateDate)
		if err != nil {
			return err
		}
		scores := map[string]int{}
		for _, arg := range args {
			name, value, found := strings.Cut(arg, "=")
			if !found {
				return fmt.Errorf("expected dimension=score, got %q", arg)
			}
			score, err := strconv.Atoi(value)
			if err != nil || score < -2 || score > 2 {
				return fmt.Errorf("score must be -2..2, got %q", value)
			}
			id := name
			for _, item := range a.Doc().RatingItems {
				if strings.EqualFold(item.Name, name) || item.ID == name {
					id = item.ID
					break
				}
			}
			scores[id] = score
		}
		if err := a.RateDay(date, scores, rateComment); err != nil {
			return err
		}
		fmt.Printf("Rated %s. Balance: %d\n", date, a.Balance())
		return nil
	},
}

var rateItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage rating dimensions",
}

var rateItemsAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a rating dimension",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		item, err := a.AddRatingItem(strings.Join(args, " "), nil)
		if err != nil {
			return err
		}
		fmt.Printf("Dimension %q added (%s)\n", item.Name, item.ID[:8])
		return nil
	},
}

var rateItemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rating dimensions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		for _, item := range a.Doc().RatingItems {
			fmt.Printf("%-16s %s\n", item.Name, item.ID)
		}
		return nil
	},
}

var rateItemsRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a rating dimension (old scores still count)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		id := args[0]
		for _, item := range a.Doc().RatingItems {
			if strings.EqualFold(item.Name, id) || strings.HasPrefix(item.ID, id) {
				id = item.ID
				break
			}
		}
		return a.DeleteRatingItem(id)
	},
}

func init() {
	rateCmd.Flags().StringVarP(&rateDate, "date", "d", "", "Date (today, yesterday, YYYY-MM-DD)")
	rateCmd.Flags().StringVarP(&rateComment, "comment", "c", "", "Day comment")
	rateItemsCmd.AddCommand(rateItemsAddCmd, rateItemsListCmd, rateItemsRmCmd)
	rateCmd.AddCommand(rateItemsCmd)
}
