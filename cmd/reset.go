package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the draft and the recorded quiz status",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, _ := cmd.Flags().GetBool("events")

		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		if err := rt.drafts.Clear(ctx); err != nil {
			return fmt.Errorf("clear draft: %w", err)
		}
		if err := rt.store.StatusRepo().Reset(ctx); err != nil {
			return fmt.Errorf("reset status: %w", err)
		}
		if events {
			if err := rt.store.EventRepo().PruneWizardEvents(ctx, 0); err != nil {
				return fmt.Errorf("prune events: %w", err)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Assessment data reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("events", false, "Also delete the wizard event log")
}
