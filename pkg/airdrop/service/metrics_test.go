package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/airdrop-registry/internal/metrics"
	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
)

func TestRegister_RecordsMetrics(t *testing.T) {
	f := newFixture(t, signatureConfig())
	ctx := context.Background()

	success := metrics.Registrations.WithLabelValues(metrics.OutcomeSuccess, "")
	rejectedSig := metrics.Registrations.WithLabelValues(metrics.OutcomeRejected, TypeSignature)
	successBefore := testutil.ToFloat64(success)
	rejectedBefore := testutil.ToFloat64(rejectedSig)
	tokensBefore := testutil.ToFloat64(metrics.RegisteredTokens)

	_, err := f.svc.Register(ctx, f.availOnly(t))
	require.NoError(t, err)

	req := &airdrop.RegisterRequest{
		AvailAddress:    f.avail2.Address,
		FinalEVMAddress: f.final.Address,
		AvailSignature:  f.avail2.Sign(t, testRegisterMessage),
	}
	_, err = f.svc.Register(ctx, req)
	require.Error(t, err)

	require.Equal(t, successBefore+1, testutil.ToFloat64(success))
	require.Equal(t, rejectedBefore+1, testutil.ToFloat64(rejectedSig))
	require.Equal(t, tokensBefore+100, testutil.ToFloat64(metrics.RegisteredTokens))
}

func TestCheckEligibility_RecordsMetrics(t *testing.T) {
	f := newFixture(t, signatureConfig())

	eligible := metrics.EligibilityChecks.WithLabelValues(string(airdrop.ChainAvail), metrics.ResultEligible)
	before := testutil.ToFloat64(eligible)

	_, err := f.svc.CheckEligibility(context.Background(), airdrop.ChainAvail, &airdrop.EligibilityRequest{Address: f.avail.Address})
	require.NoError(t, err)

	require.Equal(t, before+1, testutil.ToFloat64(eligible))
}
