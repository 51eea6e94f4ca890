package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/misterclayt0n/glowup/internal/config"
	"github.com/misterclayt0n/glowup/internal/storage"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and create the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if _, err := config.Save(cfg); err != nil {
				return fmt.Errorf("Failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Config written to %s\n", path)
		}

		st, err := storage.Open(cfg.DB.ConnectionString, cfg.DB.AuthToken)
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Database initialized at %s\n", cfg.DB.ConnectionString)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
