package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

// NewRegistrationsCommand creates the registrations command.
func NewRegistrationsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "registrations",
		Short: "Export every registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRegistrations(rootOpts, cmd)
		},
	}
}

func runRegistrations(opts *RootOptions, cmd *cobra.Command) error {
	store, _, _, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.LoadRegistrations(cmd.Context())
	if err != nil {
		return err
	}
	export := airdrop.NewRegistrationsExport(records)

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	return f.Print(export, func(w io.Writer) error {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "AVAIL\tEVM\tFINAL EVM\tTOKENS\tTIMESTAMP")
		for _, r := range export.Registrations {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
				orDash(r.AvailAddress), orDash(r.EVMAddress), r.FinalEVMAddress, r.Tokens, r.Timestamp)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "%d registrations, %d tokens\n", export.Count, export.TotalTokens)
		return err
	})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
