package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		Short:   "Create the record store collections",
		Long:    `Create every managed collection and the event log table of each registered listener. Safe to run repeatedly.`,
		GroupID: "management",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			result, err := a.Schema.CreateSchema(cmd.Context())
			if result != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Collections: %d created or verified\n", len(result.Created))
				for _, table := range result.EventLogTables {
					fmt.Fprintf(cmd.OutOrStdout(), "  event log %s\n", table)
				}
			}
			return err
		},
	}
}
