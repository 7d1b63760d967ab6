package auth

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/go-schnorrkel"
	"github.com/btcsuite/btcd/btcutil/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// SubstratePrefix is the generic Substrate SS58 network prefix.
	SubstratePrefix uint16 = 42

	ss58PublicKeyLen = 32
	ss58ChecksumLen  = 2
)

var (
	ss58Preamble     = []byte("SS58PRE")
	substrateContext = []byte("substrate")

	bytesWrapPrefix = "<Bytes>"
	bytesWrapSuffix = "</Bytes>"
)

// Errors returned while decoding SS58 addresses
var (
	ErrInvalidSS58         = errors.New("invalid SS58 address")
	ErrInvalidSS58Checksum = errors.New("invalid SS58 checksum")
)

// SS58Address is a decoded Substrate account address
type SS58Address struct {
	Prefix    uint16
	PublicKey [ss58PublicKeyLen]byte
}

// DecodeSS58 decodes a base58 SS58 address carrying a 32-byte account id.
func DecodeSS58(address string) (*SS58Address, error) {
	raw := base58.Decode(address)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: not base58", ErrInvalidSS58)
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case raw[0] < 64:
		prefix, prefixLen = uint16(raw[0]), 1
	case raw[0] < 128:
		if len(raw) < 2 {
			return nil, fmt.Errorf("%w: truncated prefix", ErrInvalidSS58)
		}
		lower := (raw[0]<<2)&0xfc | raw[1]>>6
		upper := raw[1] & 0x3f
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, fmt.Errorf("%w: reserved prefix byte %d", ErrInvalidSS58, raw[0])
	}

	if len(raw) != prefixLen+ss58PublicKeyLen+ss58ChecksumLen {
		return nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidSS58, len(raw))
	}

	body := raw[:prefixLen+ss58PublicKeyLen]
	checksum := ss58Checksum(body)
	if !bytes.Equal(checksum[:ss58ChecksumLen], raw[len(body):]) {
		return nil, ErrInvalidSS58Checksum
	}

	out := &SS58Address{Prefix: prefix}
	copy(out.PublicKey[:], body[prefixLen:])
	return out, nil
}

// EncodeSS58 encodes a 32-byte public key under the given network prefix.
func EncodeSS58(publicKey [ss58PublicKeyLen]byte, prefix uint16) (string, error) {
	var head []byte
	switch {
	case prefix < 64:
		head = []byte{byte(prefix)}
	case prefix < 16384:
		head = []byte{
			byte((prefix&0xfc)>>2) | 0x40,
			byte(prefix>>8) | byte(prefix&0x03)<<6,
		}
	default:
		return "", fmt.Errorf("%w: prefix %d out of range", ErrInvalidSS58, prefix)
	}

	body := append(head, publicKey[:]...)
	checksum := ss58Checksum(body)
	return base58.Encode(append(body, checksum[:ss58ChecksumLen]...)), nil
}

// ValidateSS58Address checks if a string is a well-formed SS58 account address
func ValidateSS58Address(address string) bool {
	_, err := DecodeSS58(address)
	return err == nil
}

func ss58Checksum(body []byte) [blake2b.Size]byte {
	return blake2b.Sum512(append(append([]byte{}, ss58Preamble...), body...))
}

// VerifySubstrateSignature checks a signRaw signature over message by the
// account behind address. sr25519 is tried first, then ed25519. The payload
// may have been signed as-is or wrapped in <Bytes>...</Bytes>.
//
// A 65-byte signature is treated as a MultiSignature whose first byte selects
// the scheme (0 ed25519, 1 sr25519).
func VerifySubstrateSignature(address, message, signature string) error {
	addr, err := DecodeSS58(address)
	if err != nil {
		return err
	}

	sig, err := hex.DecodeString(strings.TrimPrefix(signature, "0x"))
	if err != nil {
		return fmt.Errorf("invalid signature hex: %w", err)
	}

	schemes := []func([ss58PublicKeyLen]byte, []byte, []byte) bool{verifySr25519, verifyEd25519}
	if len(sig) == 65 {
		switch sig[0] {
		case 0:
			schemes = schemes[1:]
		case 1:
			schemes = schemes[:1]
		default:
			return fmt.Errorf("unsupported signature type %d", sig[0])
		}
		sig = sig[1:]
	}

	if len(sig) != 64 {
		return fmt.Errorf("invalid signature length: expected 64, got %d", len(sig))
	}

	for _, payload := range substratePayloads(message) {
		for _, verify := range schemes {
			if verify(addr.PublicKey, payload, sig) {
				return nil
			}
		}
	}

	return ErrSignerMismatch
}

func substratePayloads(message string) [][]byte {
	if strings.HasPrefix(message, bytesWrapPrefix) && strings.HasSuffix(message, bytesWrapSuffix) {
		return [][]byte{[]byte(message)}
	}
	return [][]byte{
		[]byte(bytesWrapPrefix + message + bytesWrapSuffix),
		[]byte(message),
	}
}

func verifySr25519(publicKey [ss58PublicKeyLen]byte, payload, sig []byte) bool {
	pub, err := schnorrkel.NewPublicKey(publicKey)
	if err != nil {
		return false
	}

	var sigBytes [64]byte
	copy(sigBytes[:], sig)
	s := new(schnorrkel.Signature)
	if err := s.Decode(sigBytes); err != nil {
		return false
	}

	ok, err := pub.Verify(s, schnorrkel.NewSigningContext(substrateContext, payload))
	return err == nil && ok
}

func verifyEd25519(publicKey [ss58PublicKeyLen]byte, payload, sig []byte) bool {
	return ed25519.Verify(publicKey[:], payload, sig)
}
