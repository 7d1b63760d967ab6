// Package authtest provides wallet fixtures for tests that need real
// EVM and Substrate signatures.
package authtest

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/airdrop-registry/pkg/auth"
)

// EVMWallet is a throwaway secp256k1 account
type EVMWallet struct {
	Key     *ecdsa.PrivateKey
	Address string
}

// NewEVMWallet generates a fresh EVM account
func NewEVMWallet(t testing.TB) *EVMWallet {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return &EVMWallet{Key: key, Address: crypto.PubkeyToAddress(key.PublicKey).Hex()}
}

// Sign returns a 0x-prefixed personal_sign signature of message with v in {27, 28}
func (w *EVMWallet) Sign(t testing.TB, message string) string {
	t.Helper()
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	sig, err := crypto.Sign(crypto.Keccak256([]byte(prefixed)), w.Key)
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig)
}

// AvailWallet is a throwaway sr25519 account
type AvailWallet struct {
	Secret  *schnorrkel.SecretKey
	Public  *schnorrkel.PublicKey
	Address string
}

// NewAvailWallet generates a fresh sr25519 account with a generic Substrate address
func NewAvailWallet(t testing.TB) *AvailWallet {
	t.Helper()
	sk, pk, err := schnorrkel.GenerateKeypair()
	if err != nil {
		t.Fatalf("failed to generate sr25519 key: %v", err)
	}
	addr, err := auth.EncodeSS58(pk.Encode(), auth.SubstratePrefix)
	if err != nil {
		t.Fatalf("failed to encode address: %v", err)
	}
	return &AvailWallet{Secret: sk, Public: pk, Address: addr}
}

// Sign returns a 0x-prefixed signature of message as produced by a browser
// extension's signRaw, which wraps the payload in <Bytes>.
func (w *AvailWallet) Sign(t testing.TB, message string) string {
	t.Helper()
	return w.SignRaw(t, []byte("<Bytes>"+message+"</Bytes>"))
}

// SignRaw signs payload without any wrapping
func (w *AvailWallet) SignRaw(t testing.TB, payload []byte) string {
	t.Helper()
	sig, err := w.Secret.Sign(schnorrkel.NewSigningContext([]byte("substrate"), payload))
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	enc := sig.Encode()
	return "0x" + hex.EncodeToString(enc[:])
}
