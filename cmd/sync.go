package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/misterclayt0n/glowup/internal/tracker"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export the profile, session and progress to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "glowup_dump.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}
		outputFile, err := filepath.Abs(outputFile)
		if err != nil {
			return err
		}

		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("writing export file: %w", err)
		}
		defer f.Close()

		snap := tr.Export()
		if err := tracker.WriteSnapshot(f, snap); err != nil {
			return fmt.Errorf("error exporting data: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d days to %s (snapshot %s)\n", len(snap.Progress), outputFile, snap.ID)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dump-file]",
	Short: "Replace all local data with the contents of a TOML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Reading file %s: %w", args[0], err)
		}
		defer f.Close()

		snap, err := tracker.ReadSnapshot(f)
		if err != nil {
			return err
		}

		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := tr.Import(snap); err != nil {
			return fmt.Errorf("Failed to import: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d days from %s\n", len(snap.Progress), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
