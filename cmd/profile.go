package cmd

import (
	"fmt"
	"strconv"

	"github.com/misterclayt0n/glowup/internal/tracker"
	"github.com/spf13/cobra"
)

var profileForm tracker.ProfileForm

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireSession(tr); err != nil {
			return err
		}
		p, _ := tr.Profile()

		out := cmd.OutOrStdout()
		printBoxedHeader(out, "PROFILE")
		printProfile(out, p)
		return nil
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit profile fields (only the flags you pass are changed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, closeFn, err := openTracker()
		if err != nil {
			return err
		}
		defer closeFn()

		if err := requireSession(tr); err != nil {
			return err
		}
		p, _ := tr.Profile()

		// Start from the stored values and overlay the flags that were set.
		form := tracker.ProfileForm{
			Name:             p.Name,
			Age:              strconv.Itoa(p.Age),
			Height:           strconv.FormatFloat(p.Height, 'f', -1, 64),
			Weight:           strconv.FormatFloat(p.Weight, 'f', -1, 64),
			MedicalCondition: p.MedicalCondition,
			FitnessGoal:      string(p.FitnessGoal),
			TargetWeight:     strconv.FormatFloat(p.TargetWeight, 'f', -1, 64),
		}
		overlay := []struct {
			flag string
			src  string
			dst  *string
		}{
			{"name", profileForm.Name, &form.Name},
			{"age", profileForm.Age, &form.Age},
			{"height", profileForm.Height, &form.Height},
			{"weight", profileForm.Weight, &form.Weight},
			{"condition", profileForm.MedicalCondition, &form.MedicalCondition},
			{"goal", profileForm.FitnessGoal, &form.FitnessGoal},
			{"target", profileForm.TargetWeight, &form.TargetWeight},
		}
		for _, o := range overlay {
			if cmd.Flags().Changed(o.flag) {
				*o.dst = o.src
			}
		}

		update, err := tracker.ParseProfileForm(form)
		if err != nil {
			return err
		}
		updated, err := tr.Profiles.UpdateProfile(update)
		if err != nil {
			return fmt.Errorf("Failed to update profile: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "✅ Profile updated")
		printProfile(out, updated)
		return nil
	},
}

func init() {
	f := profileEditCmd.Flags()
	f.StringVarP(&profileForm.Name, "name", "n", "", "Your name")
	f.StringVarP(&profileForm.Age, "age", "a", "", "Age in years")
	f.StringVar(&profileForm.Height, "height", "", "Height in cm")
	f.StringVarP(&profileForm.Weight, "weight", "w", "", "Weight in kg")
	f.StringVar(&profileForm.MedicalCondition, "condition", "", "Medical conditions")
	f.StringVarP(&profileForm.FitnessGoal, "goal", "g", "", "weight_loss, muscle_gain, maintain or general_fitness")
	f.StringVarP(&profileForm.TargetWeight, "target", "t", "", "Target weight in kg")

	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
