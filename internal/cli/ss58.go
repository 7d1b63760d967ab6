package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chainsafe/airdrop-registry/pkg/auth"
)

// SS58Options holds flags for the ss58 command.
type SS58Options struct {
	*RootOptions
	Prefix int // re-encode under this network prefix when >= 0
}

// SS58Result describes a decoded address.
type SS58Result struct {
	Address   string `json:"address"`
	Prefix    uint16 `json:"prefix"`
	PublicKey string `json:"public_key"`
	Reencoded string `json:"reencoded,omitempty"`
}

// NewSS58Command creates the ss58 command.
func NewSS58Command(rootOpts *RootOptions) *cobra.Command {
	opts := &SS58Options{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ss58 <address>",
		Short: "Decode an SS58 address",
		Long: `Decode an SS58 address and print its network prefix and public key.

With --prefix the same key is printed under another network prefix,
which helps when an eligibility list was exported with a chain-specific
prefix instead of the generic Substrate one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSS58(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Prefix, "prefix", "p", -1, "network prefix to re-encode with")

	return cmd
}

func runSS58(opts *SS58Options, address string, cmd *cobra.Command) error {
	decoded, err := auth.DecodeSS58(address)
	if err != nil {
		return err
	}

	result := SS58Result{
		Address:   address,
		Prefix:    decoded.Prefix,
		PublicKey: "0x" + hex.EncodeToString(decoded.PublicKey[:]),
	}
	if opts.Prefix >= 0 {
		if opts.Prefix > 16383 {
			return fmt.Errorf("prefix %d out of range", opts.Prefix)
		}
		result.Reencoded, err = auth.EncodeSS58(decoded.PublicKey, uint16(opts.Prefix))
		if err != nil {
			return err
		}
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Print(result, func(w io.Writer) error {
		fmt.Fprintf(w, "prefix:     %d\n", result.Prefix)
		fmt.Fprintf(w, "public key: %s\n", result.PublicKey)
		if result.Reencoded != "" {
			fmt.Fprintf(w, "address:    %s\n", result.Reencoded)
		}
		return nil
	})
}
