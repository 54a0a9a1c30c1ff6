package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	rolloverDisable bool
	rolloverMaxDays int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Tune rollover, theme and review templates",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		doc := a.Doc()
		fmt.Printf("Rollover:  enabled=%v maxDays=%d\n", doc.Rollover.Enabled, doc.Rollover.MaxDays)
		if doc.ThemeColor != "" {
			fmt.Printf("Theme:     %s\n", doc.ThemeColor)
		}
		fmt.Printf("Templates: %d review template(s)\n", len(doc.ReviewTemplates))
		return nil
	},
}

var settingsRolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Configure carrying unfinished todos forward",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := a.SetRollover(!rolloverDisable, rolloverMaxDays); err != nil {
			return err
		}
		fmt.Printf("Rollover enabled=%v maxDays=%d\n", !rolloverDisable, rolloverMaxDays)
		return nil
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [color]",
	Short: "Set the accent color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		return a.SetTheme(args[0])
	},
}

var settingsTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage review templates",
}

var settingsTemplateAddCmd = &cobra.Command{
	Use:   "add [name] [content]",
	Short: "Add a review template",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		tpl, err := a.AddReviewTemplate(args[0], strings.Join(args[1:], " "))
		if err != nil {
			return err
		}
		fmt.Printf("Template %q added (%s)\n", tpl.Name, tpl.ID[:8])
		return nil
	},
}

var settingsTemplateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List review templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()
		for _, tpl := range a.Doc().ReviewTemplates {
			fmt.Printf("%-20s %s\n", tpl.Name, tpl.ID)
		}
		return nil
	},
}

var settingsTemplateRmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Delete a review template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		id := args[0]
		for _, tpl := range a.Doc().ReviewTemplates {
			if strings.EqualFold(tpl.Name, id) || strings.HasPrefix(tpl.ID, id) {
				id = tpl.ID
				break
			}
		}
		return a.DeleteReviewTemplate(id)
	},
}

func init() {
	settingsRolloverCmd.Flags().BoolVar(&rolloverDisable, "disable", false, "Turn rollover off")
	settingsRolloverCmd.Flags().IntVar(&rolloverMaxDays, "max-days", 3, "How many days a todo may be carried")
	settingsTemplateCmd.AddCommand(settingsTemplateAddCmd, settingsTemplateListCmd, settingsTemplateRmCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsRolloverCmd, settingsThemeCmd, settingsTemplateCmd)
}
