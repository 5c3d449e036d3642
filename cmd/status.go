package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/draft"
	"github.com/careercompass/compass/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show assessment status",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		status, err := rt.store.StatusRepo().Current(ctx)
		if err != nil {
			return fmt.Errorf("read status: %w", err)
		}
		fmt.Fprintf(out, "Status:      %s\n", status)

		d, err := rt.drafts.Peek(ctx)
		if err != nil && !errors.Is(err, draft.ErrCorrupt) {
			return fmt.Errorf("read draft: %w", err)
		}
		switch {
		case err != nil:
			fmt.Fprintln(out, "Draft:       unreadable")
		case d != nil:
			fmt.Fprintf(out, "Draft:       saved %s\n", d.SavedAt.Local().Format("2006-01-02 15:04:05"))
		default:
			fmt.Fprintln(out, "Draft:       none")
		}

		events, err := rt.store.EventRepo().QueryWizardEvents(ctx, store.QueryOpts{Limit: 1})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) > 0 {
			e := events[0]
			fmt.Fprintf(out, "Last event:  %s (%s) at %s\n", e.Kind, e.Section, e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}
