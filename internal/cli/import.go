package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	"github.com/chainsafe/airdrop-registry/pkg/airdropstore"
)

// ImportResult summarises a loaded eligibility list.
type ImportResult struct {
	Chain       airdrop.Chain `json:"chain"`
	Count       int           `json:"count"`
	TotalTokens uint64        `json:"total_tokens"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <avail|evm> <file>",
		Short: "Replace the eligibility list of a chain",
		Long: `Replace the eligibility list of a chain with the entries in file.

The file may be one of the JSON store documents
({"eligible_addresses": [...]} or {"eligible_evm_addresses": [...]})
or a bare array of {"address", "tokens"} objects. Every address is
checked for the chain's format before anything is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runImport(opts *RootOptions, chainArg, path string, cmd *cobra.Command) error {
	chain, err := airdrop.ParseChain(chainArg)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	entries, err := airdropstore.ParseEligibility(raw)
	if err != nil {
		return err
	}

	result := ImportResult{Chain: chain, Count: len(entries)}
	for i, e := range entries {
		if err := airdrop.ValidateAddress(chain, e.Address); err != nil {
			return fmt.Errorf("entry %d (%q): %w", i, e.Address, err)
		}
		result.TotalTokens += e.Tokens
	}

	store, _, _, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.ReplaceEligibility(cmd.Context(), chain, entries); err != nil {
		return err
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Print(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "Imported %d %s addresses (%d tokens)\n", result.Count, chain, result.TotalTokens)
		return err
	})
}
