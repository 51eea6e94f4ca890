package cmd

import (
	"fmt"

	"github.com/misterclayt0n/glowup/internal/models"
	"github.com/misterclayt0n/glowup/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	loginFields tracker.LoginFields
	loginGoal   string
	loginDemo   bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create (or replace) the local profile and start a session",
	Long: `Create the local profile and start a session. Any field left out gets a
default value. Logging in again replaces the stored profile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		var p models.UserProfile
		if loginDemo {
			p, err = tr.Profiles.DemoLogin()
		} else {
			fields := loginFields
			if loginGoal != "" {
				fields.FitnessGoal = models.FitnessGoal(loginGoal)
				if !fields.FitnessGoal.Valid() {
					return fmt.Errorf("Unknown goal %q (use weight_loss, muscle_gain, maintain or general_fitness)", loginGoal)
				}
			}
			p, err = tr.Profiles.Login(fields)
		}
		if err != nil {
			return fmt.Errorf("Failed to log in: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Welcome, %s!\n", p.Name)
		printProfile(out, p)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session (profile and progress are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := tr.Profiles.Logout(); err != nil {
			return fmt.Errorf("Failed to log out: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginFields.Name, "name", "n", "", "Your name")
	loginCmd.Flags().IntVarP(&loginFields.Age, "age", "a", 0, "Age in years")
	loginCmd.Flags().Float64Var(&loginFields.Height, "height", 0, "Height in cm")
	loginCmd.Flags().Float64VarP(&loginFields.Weight, "weight", "w", 0, "Current weight in kg")
	loginCmd.Flags().StringVar(&loginFields.MedicalCondition, "condition", "", "Medical conditions, if any")
	loginCmd.Flags().StringVarP(&loginGoal, "goal", "g", "", "weight_loss, muscle_gain, maintain or general_fitness")
	loginCmd.Flags().Float64VarP(&loginFields.TargetWeight, "target", "t", 0, "Target weight in kg (defaults to current weight)")
	loginCmd.Flags().BoolVar(&loginDemo, "demo", false, "Log in with the demo account")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
