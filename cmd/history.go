package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent wizard events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		events, err := rt.store.EventRepo().QueryWizardEvents(cmd.Context(), store.QueryOpts{Limit: limit, Kind: kind})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No wizard events found.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-16s  %-12s  %s\n", "Seq", "Timestamp", "Kind", "Section", "Detail")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, e := range events {
			detail := e.Detail
			if len(detail) > 40 {
				detail = detail[:37] + "..."
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-16s  %-12s  %s\n",
				e.Sequence,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Kind,
				e.Section,
				detail,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	historyCmd.Flags().String("kind", "", "Only show events of this kind")
}
