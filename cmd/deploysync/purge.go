package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newPurgeCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete every imported record",
		Long: `Empty every managed collection and every event log table.

Organizations are kept. The command refuses to run without --yes.`,
		GroupID: "management",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to purge without --yes")
			}

			a, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.Schema.DeleteAllCollections(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All imported records deleted.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm deletion of all imported records")
	return cmd
}
