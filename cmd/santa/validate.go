package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/santa"
	"github.com/arloliu/santa/source"
)

func newValidateCmd() *cobra.Command {
	var roster string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a roster file without drawing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			group, err := santa.NewGroupFromSource(cmd.Context(), nil, source.NewFile(roster))
			if err != nil {
				return err
			}

			mutual, directed := 0, 0
			for _, c := range group.Constraints() {
				if c.Kind == santa.ConstraintMutual {
					mutual++
				} else {
					directed++
				}
			}

			out := cmd.OutOrStdout()
			printSuccess(out, fmt.Sprintf("%s: %d participants, %d mutual and %d directed exclusions",
				roster, group.Len(), mutual, directed))
			if group.Len() < 2 {
				fmt.Fprintln(out, styles.Warning.Render("  at least 2 participants are needed to draw"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&roster, "roster", "", "YAML roster file (required)")
	_ = cmd.MarkFlagRequired("roster")

	return cmd
}
