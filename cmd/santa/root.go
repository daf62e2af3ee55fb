package main

import (
	"io"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "santa",
		Short: "Draw Secret Santa names under exclusion constraints",
		Long: `santa assigns every participant exactly one other participant to buy a gift for,
honouring couples (mutual exclusions) and one-way exclusions from a roster file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.AddCommand(
		newDrawCmd(),
		newValidateCmd(),
		newLookupCmd(),
	)

	return root
}
