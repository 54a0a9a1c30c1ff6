package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	objectiveTitle string
	objectiveColor string
	objectiveDesc  string
)

var objectiveCmd = &cobra.Command{
	Use:   "objective",
	Short: "Manage objectives (life-area categories)",
}

var objectiveAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add an objective",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		o, err := a.AddObjective(strings.Join(args, " "), objectiveDesc, objectiveColor)
		if err != nil {
			return err
		}
		fmt.Printf("Objective %q added (%s)\n", o.Title, o.ID[:8])
		return nil
	},
}

var objectiveListCmd = &cobra.Command{
	Use:   "list",
	Short: "List objectives in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		doc := a.Doc()
		listed := map[string]bool{}
		printOne := func(id string) {
			o, ok := doc.ObjectiveByID(id)
			if !ok {
				return
			}
			listed[id] = true
			fmt.Printf("%-24s %s  %s\n", o.Title, o.Color, o.ID[:8])
		}
		for _, id := range doc.CategoryOrder {
			printOne(id)
		}
		for _, o := range doc.Objectives {
			if !listed[o.ID] {
				printOne(o.ID)
			}
		}
		return nil
	},
}

var objectiveEditCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an objective",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		o, ok := a.Doc().ObjectiveByID(resolveObjective(a, args[0]))
		if !ok {
			return fmt.Errorf("objective %q not found", args[0])
		}
		if cmd.Flags().Changed("title") {
			o.Title = objectiveTitle
		}
		if cmd.Flags().Changed("color") {
			o.Color = objectiveColor
		}
		if cmd.Flags().Changed("description") {
			o.Description = objectiveDesc
		}
		return a.UpdateObjective(o)
	},
}

var objectiveRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete an objective (its tasks become uncategorized)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		if err := a.DeleteObjective(resolveObjective(a, args[0])); err != nil {
			return err
		}
		fmt.Println("Objective deleted.")
		return nil
	},
}

var objectiveOrderCmd = &cobra.Command{
	Use:   "order [id...]",
	Short: "Set the display order of objectives",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		order := make([]string, 0, len(args))
		for _, arg := range args {
			order = append(order, resolveObjective(a, arg))
		}
		return a.ReorderCategories(order)
	},
}

func init() {
	for _, c := range []*cobra.Command{objectiveAddCmd, objectiveEditCmd} {
		c.Flags().StringVarP(&objectiveColor, "color", "c", "#89B4FA", "Display color")
		c.Flags().StringVarP(&objectiveDesc, "description", "d", "", "Description")
	}
	objectiveEditCmd.Flags().StringVarP(&objectiveTitle, "title", "t", "", "New title")
	objectiveCmd.AddCommand(objectiveAddCmd, objectiveListCmd, objectiveEditCmd,
		objectiveRmCmd, objectiveOrderCmd)
}
