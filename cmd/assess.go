package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/app"
	wizscreen "github.com/careercompass/compass/internal/screens/wizard"
	"github.com/careercompass/compass/internal/wizard"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Start or resume the career assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssess(cmd)
	},
}

// runAssess builds the wizard from configuration and launches the TUI.
func runAssess(cmd *cobra.Command) error {
	ctx := cmd.Context()

	rt, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	seq, err := rt.cfg.Sequence()
	if err != nil {
		return err
	}
	client, err := rt.client()
	if err != nil {
		return fmt.Errorf("build API client: %w", err)
	}

	ctrl, err := wizard.New(wizard.Deps{
		Backend:       client,
		Drafts:        rt.drafts,
		Status:        rt.store.StatusRepo(),
		Catalog:       rt.catalog,
		Sequence:      seq,
		Events:        rt.store.EventRepo(),
		Logger:        rt.log,
		SubmitTimeout: rt.cfg.SubmitTimeout(),
	}, wizard.Context{})
	if err != nil {
		return err
	}

	outcome, err := app.Run(ctx, app.Options{
		Controller: ctrl,
		Backend:    client,
		Catalog:    rt.catalog,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outcome {
	case wizscreen.OutcomeSaved:
		fmt.Fprintln(out, "Progress saved. Run `compass` again to pick up where you left off.")
	case wizscreen.OutcomeSubmitted:
		fmt.Fprintln(out, "Assessment submitted. Your career recommendations are being prepared.")
	}
	return nil
}
