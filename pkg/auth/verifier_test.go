package auth_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/auth"
	"github.com/chainsafe/airdrop-registry/pkg/auth/authtest"
	"github.com/chainsafe/airdrop-registry/pkg/config"
)

func TestVerifier(t *testing.T) {
	evm := authtest.NewEVMWallet(t)
	avail := authtest.NewAvailWallet(t)
	msg := "Registering Wallets for AIDX Airdrop"

	strict := auth.NewVerifier(config.SignatureConfig{VerifyEVM: true, VerifyAvail: true}, zap.NewNop())
	if err := strict.VerifyEVM(evm.Address, msg, evm.Sign(t, msg)); err != nil {
		t.Fatalf("VerifyEVM failed: %v", err)
	}
	if err := strict.VerifyAvail(avail.Address, msg, avail.Sign(t, msg)); err != nil {
		t.Fatalf("VerifyAvail failed: %v", err)
	}
	if err := strict.VerifyEVM(evm.Address, msg, "0xdeadbeef"); err == nil {
		t.Fatalf("expected bad EVM signature to fail")
	}
	if err := strict.VerifyAvail(avail.Address, msg, "0xdeadbeef"); err == nil {
		t.Fatalf("expected bad Avail signature to fail")
	}

	trusting := auth.NewVerifier(config.SignatureConfig{}, nil)
	if err := trusting.VerifyEVM(evm.Address, msg, "0xdeadbeef"); err != nil {
		t.Fatalf("expected trust mode to accept, got %v", err)
	}
	if err := trusting.VerifyAvail(avail.Address, msg, "anything"); err != nil {
		t.Fatalf("expected trust mode to accept, got %v", err)
	}
}
