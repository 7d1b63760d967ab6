package auth

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrSignerMismatch is returned when a signature is valid but was produced by
// a different key than the claimed address.
var ErrSignerMismatch = errors.New("signature does not match address")

// VerifyEIP191Signature verifies an EIP-191 personal_sign signature
// Returns the recovered Ethereum address if valid
func VerifyEIP191Signature(message, signature string) (common.Address, error) {
	sigBytes, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid signature hex: %w", err)
	}

	if len(sigBytes) != 65 {
		return common.Address{}, fmt.Errorf("invalid signature length: expected 65, got %d", len(sigBytes))
	}

	// v can be 0, 1, 27, or 28 - normalize to 0 or 1
	if sigBytes[64] >= 27 {
		sigBytes[64] -= 27
	}

	pubKey, err := crypto.SigToPub(accounts191Hash(message), sigBytes)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}

	return crypto.PubkeyToAddress(*pubKey), nil
}

// VerifyEVMSignature checks that signature is an EIP-191 signature of message
// produced by address.
func VerifyEVMSignature(address, message, signature string) error {
	if !ValidateEVMAddress(address) {
		return fmt.Errorf("invalid EVM address: %s", address)
	}

	recovered, err := VerifyEIP191Signature(message, signature)
	if err != nil {
		return err
	}

	if !EqualEVMAddress(recovered.Hex(), address) {
		return fmt.Errorf("%w: recovered %s", ErrSignerMismatch, recovered.Hex())
	}
	return nil
}

func accounts191Hash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// ValidateEVMAddress checks if a string is a valid EVM address
func ValidateEVMAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return false
	}
	if len(address) != 42 {
		return false
	}
	_, err := hex.DecodeString(address[2:])
	return err == nil
}

// EqualEVMAddress compares two EVM addresses ignoring case.
func EqualEVMAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}
