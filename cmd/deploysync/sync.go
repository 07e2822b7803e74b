package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"saas-admin.backend/internal/domain/entities"
)

func newSyncCmd() *cobra.Command {
	var (
		orgID  string
		folder string
		rpcURL string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Import a deployments folder for an organization",
		Long: `Import every network of a hardhat deployments folder for one organization.

Networks are imported one after another. A network that cannot be imported is
reported and the remaining networks still run. The command fails only when
every network was abandoned.`,
		GroupID: "import",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(orgID)
			if err != nil {
				return fmt.Errorf("invalid --org %q: %w", orgID, err)
			}

			a, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := a.DeploymentSync.ImportHardhatDeploymentsForOrganization(cmd.Context(), id, folder, rpcURL)
			if report != nil {
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if encErr := enc.Encode(report); encErr != nil {
						return encErr
					}
				} else {
					printReport(cmd, report)
				}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&orgID, "org", "", "Organization id that owns the imported records (required)")
	cmd.Flags().StringVar(&folder, "dir", "", "Deployments folder (defaults to DEPLOY_FOLDER)")
	cmd.Flags().StringVar(&rpcURL, "rpc", "", "Fallback RPC URL for factory reads")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full import report as JSON")
	if err := cmd.MarkFlagRequired("org"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	return cmd
}

func printReport(cmd *cobra.Command, report *entities.SyncReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Import %s from %s\n", report.ImportID, report.Folder)
	if len(report.Networks) == 0 {
		fmt.Fprintln(out, "No deployments found.")
		return
	}

	for _, n := range report.Networks {
		if n.Abandoned() {
			fmt.Fprintf(out, "  %s (chain %d): abandoned: %s\n", n.Network, n.ChainID, n.Error)
			continue
		}
		fmt.Fprintf(out, "  %s (chain %d): %d imported, %d failed, %d diamonds\n",
			n.Network, n.ChainID, len(n.Imported), len(n.Failed), n.Diamonds)
		for _, f := range n.Failed {
			fmt.Fprintf(out, "    - %s: %s\n", f.Artifact, f.Error)
		}
	}

	imported, failed := report.Totals()
	fmt.Fprintf(out, "Total: %d imported, %d failed\n", imported, failed)
}
