package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/pipetable"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pipetable version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), pipetable.VersionTag())
			return err
		},
	}
}
