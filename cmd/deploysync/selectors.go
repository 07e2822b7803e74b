package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"maps"
	"slices"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"saas-admin.backend/internal/infrastructure/hardhat"
)

func newSelectorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selectors <artifact.json>",
		Short: "Print function selectors, event topics and error selectors of an artifact",
		Long: `Print the 4-byte selector of every function and custom error and the topic of
every event declared by one deployment artifact. These are the codes stored on
imported methods and event definitions.`,
		GroupID: "import",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			artifact, err := hardhat.ReadArtifact(args[0])
			if err != nil {
				return fmt.Errorf("read artifact: %w", err)
			}

			parsed, err := abi.JSON(bytes.NewReader(artifact.ABI))
			if err != nil {
				return fmt.Errorf("parse abi of %s: %w", artifact.ContractName, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", artifact.ContractName)
			for _, name := range slices.Sorted(maps.Keys(parsed.Methods)) {
				sig := parsed.Methods[name].Sig
				fmt.Fprintf(out, "  function %s: %s\n", sig, selector(sig))
			}
			for _, name := range slices.Sorted(maps.Keys(parsed.Events)) {
				event := parsed.Events[name]
				fmt.Fprintf(out, "  event %s: %s\n", event.Sig, event.ID.Hex())
			}
			for _, name := range slices.Sorted(maps.Keys(parsed.Errors)) {
				sig := parsed.Errors[name].Sig
				fmt.Fprintf(out, "  error %s: %s\n", sig, selector(sig))
			}
			return nil
		},
	}
}

func selector(sig string) string {
	hash := crypto.Keccak256([]byte(sig))
	return "0x" + hex.EncodeToString(hash[:4])
}
