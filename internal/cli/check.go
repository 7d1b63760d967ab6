package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	airdropservice "github.com/chainsafe/airdrop-registry/pkg/airdrop/service"
	"github.com/chainsafe/airdrop-registry/pkg/auth"
)

// CheckResult is the outcome of a lookup.
type CheckResult struct {
	Address           string        `json:"address"`
	Chain             airdrop.Chain `json:"chain"`
	Eligible          bool          `json:"eligible"`
	AlreadyRegistered bool          `json:"already_registered"`
	Tokens            uint64        `json:"tokens"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <avail|evm> <address>",
		Short: "Look up eligibility and registration status of an address",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runCheck(opts *RootOptions, chainArg, address string, cmd *cobra.Command) error {
	chain, err := airdrop.ParseChain(chainArg)
	if err != nil {
		return err
	}

	store, cfg, logger, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	svc := airdropservice.NewService(store, auth.NewVerifier(cfg.Signatures, logger), logger, cfg.Signatures)
	res, err := svc.Resolve(cmd.Context(), address, chain)
	if err != nil {
		return err
	}

	result := CheckResult{
		Address:           address,
		Chain:             chain,
		Eligible:          res.Eligible,
		AlreadyRegistered: res.AlreadyRegistered,
		Tokens:            res.Tokens,
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Print(result, func(w io.Writer) error {
		status := "not eligible"
		switch {
		case result.Eligible:
			status = "eligible"
		case result.AlreadyRegistered:
			status = "already registered"
		}
		_, err := fmt.Fprintf(w, "%s (%s): %s, %d tokens\n", address, chain, status, result.Tokens)
		return err
	})
}
