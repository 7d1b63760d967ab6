package airdropstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

func TestParseEligibility(t *testing.T) {
	want := []airdrop.EligibilityEntry{{Address: testAvail, Tokens: 100}}

	tests := []struct {
		name string
		raw  string
	}{
		{name: "avail document", raw: `{"eligible_addresses":[{"address":"` + testAvail + `","tokens":100}]}`},
		{name: "evm document key", raw: `{"eligible_evm_addresses":[{"address":"` + testAvail + `","tokens":100}]}`},
		{name: "bare array", raw: "  [{\"address\":\"" + testAvail + "\",\"tokens\":100}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEligibility([]byte(tt.raw))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestParseEligibility_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"{",
		`{"registered_wallets":[]}`,
		`{"eligible_addresses":{"address":"x"}}`,
		`[{"address":"x","tokens":-1}]`,
	} {
		_, err := ParseEligibility([]byte(raw))
		require.Error(t, err, raw)
	}
}
