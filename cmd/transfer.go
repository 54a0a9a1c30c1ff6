package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportOut    string
	clearRecords bool
	clearYes     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full document as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		data, err := a.ExportJSON()
		if err != nil {
			return err
		}
		if exportOut == "" || exportOut == "-" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", exportOut)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the document with a previously exported one",
	Long:  "Reads from the given file, or stdin when the file is - or omitted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 0 || args[0] == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := a.ImportJSON(data); err != nil {
			return err
		}
		fmt.Println("Imported.")
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset historical records, keeping templates and settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearRecords {
			return fmt.Errorf("pass --records to confirm what to clear")
		}
		if !clearYes {
			fmt.Print("This deletes all todos, schedules, records, ratings and redemptions. Continue? [y/N] ")
			var answer string
			fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		a, st, err := openApp()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := a.ClearRecords(); err != nil {
			return err
		}
		fmt.Println("Records cleared.")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
	clearCmd.Flags().BoolVar(&clearRecords, "records", false, "Clear historical records")
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip confirmation")
}
