package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/assessment"
	"github.com/careercompass/compass/internal/draft"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect or discard the saved assessment draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the saved draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		d, err := rt.drafts.Peek(cmd.Context())
		if errors.Is(err, draft.ErrCorrupt) {
			fmt.Fprintf(out, "Saved draft is unreadable (%v).\nIt will be discarded when the assessment next starts, or run `compass draft clear`.\n", err)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read draft: %w", err)
		}
		if d == nil {
			fmt.Fprintln(out, "No saved draft.")
			return nil
		}

		if asJSON {
			data, err := draft.Encode(d)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		field := d.Field
		if field == "" {
			field = "(none)"
		}
		a := d.Answers
		fmt.Fprintf(out, "ID:          %s\n", d.ID)
		fmt.Fprintf(out, "Saved:       %s\n", d.SavedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Field:       %s\n", field)
		fmt.Fprintf(out, "Section:     %d\n", d.Section+1)
		fmt.Fprintf(out, "Interests:   %v\n", a.SelectedInterests)
		fmt.Fprintf(out, "Domains:     %v\n", a.SelectedDomains)
		fmt.Fprintf(out, "Skills:      %d rated\n", len(a.SkillRatings))
		for _, id := range []assessment.SectionID{assessment.SectionPersonality, assessment.SectionWorkStyle, assessment.SectionGoals} {
			fmt.Fprintf(out, "%-12s %d answered\n", string(id)+":", assessment.AnsweredCount(id, a))
		}
		return nil
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		if err := rt.drafts.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear draft: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared.")
		return nil
	},
}

func init() {
	draftShowCmd.Flags().Bool("json", false, "Print the stored JSON record")

	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftClearCmd)
}
