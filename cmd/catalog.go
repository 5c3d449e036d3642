package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/catalog"
	"github.com/careercompass/compass/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [field]",
	Short: "Print the interest, domain and skill options for a field of study",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listFields, _ := cmd.Flags().GetBool("fields")

		cfgFile, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(config.Options{File: cfgFile})
		if err != nil {
			return err
		}
		cat := catalog.Builtin()
		if cfg.Catalog.File != "" {
			if cat, err = catalog.Load(cfg.Catalog.File); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		if listFields {
			for _, f := range cat.Fields() {
				fmt.Fprintln(out, f)
			}
			return nil
		}

		field := ""
		if len(args) == 1 {
			field = args[0]
		}
		name := field
		if name == "" {
			name = "(default)"
		}
		fmt.Fprintf(out, "Field: %s\n\n", name)

		fmt.Fprintf(out, "%-16s  %s\n", "Interest", "Label")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, o := range cat.InterestOptions(field) {
			fmt.Fprintf(out, "%-16s  %s %s\n", o.ID, o.Icon, o.Label)
		}

		fmt.Fprintf(out, "\n%-16s  %s\n", "Domain", "Label")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, o := range cat.DomainOptions(field) {
			fmt.Fprintf(out, "%-16s  %s\n", o.ID, o.Label)
		}

		fmt.Fprintln(out, "\nSkills")
		fmt.Fprintln(out, strings.Repeat("─", 50))
		for _, s := range cat.Skills(field) {
			fmt.Fprintf(out, "  %s\n", s)
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("fields", false, "List the fields with dedicated options")
}
