package auth_test

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/chainsafe/airdrop-registry/pkg/auth"
	"github.com/chainsafe/airdrop-registry/pkg/auth/authtest"
)

const (
	aliceAddress   = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	alicePublicKey = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
)

func TestDecodeSS58(t *testing.T) {
	addr, err := auth.DecodeSS58(aliceAddress)
	if err != nil {
		t.Fatalf("DecodeSS58 failed: %v", err)
	}
	if addr.Prefix != auth.SubstratePrefix {
		t.Fatalf("expected prefix 42, got %d", addr.Prefix)
	}
	if hex.EncodeToString(addr.PublicKey[:]) != alicePublicKey {
		t.Fatalf("unexpected public key %x", addr.PublicKey)
	}
}

func TestDecodeSS58_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr error
	}{
		{name: "bad checksum", address: "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQZ", wantErr: auth.ErrInvalidSS58Checksum},
		{name: "not base58", address: "0OIl", wantErr: auth.ErrInvalidSS58},
		{name: "evm address", address: "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", wantErr: auth.ErrInvalidSS58},
		{name: "truncated", address: aliceAddress[:20], wantErr: auth.ErrInvalidSS58},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.DecodeSS58(tt.address)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestEncodeSS58_RoundTrip(t *testing.T) {
	addr, err := auth.DecodeSS58(aliceAddress)
	if err != nil {
		t.Fatalf("DecodeSS58 failed: %v", err)
	}

	enc, err := auth.EncodeSS58(addr.PublicKey, auth.SubstratePrefix)
	if err != nil {
		t.Fatalf("EncodeSS58 failed: %v", err)
	}
	if enc != aliceAddress {
		t.Fatalf("expected %s, got %s", aliceAddress, enc)
	}

	// Two-byte prefixes must survive a round trip
	for _, prefix := range []uint16{64, 255, 1284, 16383} {
		enc, err := auth.EncodeSS58(addr.PublicKey, prefix)
		if err != nil {
			t.Fatalf("EncodeSS58(%d) failed: %v", prefix, err)
		}
		dec, err := auth.DecodeSS58(enc)
		if err != nil {
			t.Fatalf("DecodeSS58(%d) failed: %v", prefix, err)
		}
		if dec.Prefix != prefix || dec.PublicKey != addr.PublicKey {
			t.Fatalf("round trip mismatch for prefix %d: %+v", prefix, dec)
		}
	}

	if _, err := auth.EncodeSS58(addr.PublicKey, 16384); err == nil {
		t.Fatalf("expected error for out of range prefix")
	}
}

func TestVerifySubstrateSignature_Sr25519(t *testing.T) {
	w := authtest.NewAvailWallet(t)
	msg := "Registering Wallets for AIDX Airdrop"

	if err := auth.VerifySubstrateSignature(w.Address, msg, w.Sign(t, msg)); err != nil {
		t.Fatalf("wrapped signature failed: %v", err)
	}
	if err := auth.VerifySubstrateSignature(w.Address, msg, w.SignRaw(t, []byte(msg))); err != nil {
		t.Fatalf("raw signature failed: %v", err)
	}

	// MultiSignature encoding with the sr25519 type byte
	multi := "0x01" + w.Sign(t, msg)[2:]
	if err := auth.VerifySubstrateSignature(w.Address, msg, multi); err != nil {
		t.Fatalf("multisignature failed: %v", err)
	}
}

func TestVerifySubstrateSignature_Rejects(t *testing.T) {
	w := authtest.NewAvailWallet(t)
	other := authtest.NewAvailWallet(t)
	msg := "Registering Wallets for AIDX Airdrop"
	sig := w.Sign(t, msg)

	if err := auth.VerifySubstrateSignature(other.Address, msg, sig); !errors.Is(err, auth.ErrSignerMismatch) {
		t.Fatalf("expected ErrSignerMismatch for wrong signer, got %v", err)
	}
	if err := auth.VerifySubstrateSignature(w.Address, "other", sig); !errors.Is(err, auth.ErrSignerMismatch) {
		t.Fatalf("expected ErrSignerMismatch for wrong message, got %v", err)
	}
	if err := auth.VerifySubstrateSignature(w.Address, msg, "0x1234"); err == nil {
		t.Fatalf("expected error for short signature")
	}
	if err := auth.VerifySubstrateSignature("not-an-address", msg, sig); err == nil {
		t.Fatalf("expected error for invalid address")
	}
	if err := auth.VerifySubstrateSignature(w.Address, msg, "0x02"+sig[2:]); err == nil {
		t.Fatalf("expected error for ecdsa multisignature")
	}
}

func TestVerifySubstrateSignature_Ed25519(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	var pk [32]byte
	copy(pk[:], pub)
	addr, err := auth.EncodeSS58(pk, auth.SubstratePrefix)
	if err != nil {
		t.Fatalf("EncodeSS58 failed: %v", err)
	}

	msg := "Connecting to AIDX Airdrop Checker"
	sig := ed25519.Sign(priv, []byte("<Bytes>"+msg+"</Bytes>"))

	if err := auth.VerifySubstrateSignature(addr, msg, hex.EncodeToString(sig)); err != nil {
		t.Fatalf("ed25519 signature failed: %v", err)
	}
	if err := auth.VerifySubstrateSignature(addr, msg, "0x00"+hex.EncodeToString(sig)); err != nil {
		t.Fatalf("ed25519 multisignature failed: %v", err)
	}
}

func TestValidateSS58Address(t *testing.T) {
	if !auth.ValidateSS58Address(aliceAddress) {
		t.Fatalf("expected Alice's address to be valid")
	}
	if auth.ValidateSS58Address("5Grwva") {
		t.Fatalf("expected truncated address to be invalid")
	}
}
