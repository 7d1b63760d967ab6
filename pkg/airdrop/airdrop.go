// Package airdrop holds the domain model shared by the registration service,
// its storage backends and the operator CLI.
package airdrop

import (
	"fmt"
	"strings"
)

// Chain identifies which eligibility list an address belongs to
type Chain string

const (
	ChainAvail Chain = "avail"
	ChainEVM   Chain = "evm"
)

// Chains lists every supported chain
var Chains = []Chain{ChainAvail, ChainEVM}

// ParseChain parses a chain name, ignoring case
func ParseChain(s string) (Chain, error) {
	switch Chain(strings.ToLower(strings.TrimSpace(s))) {
	case ChainAvail:
		return ChainAvail, nil
	case ChainEVM:
		return ChainEVM, nil
	default:
		return "", fmt.Errorf("unknown chain %q", s)
	}
}

// NormalizeAddress returns the form an address is compared in for chain.
// Avail addresses are case-sensitive, EVM addresses are not.
func (c Chain) NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if c == ChainEVM {
		return strings.ToLower(address)
	}
	return address
}

// TimestampLayout is the ISO-8601 form with milliseconds produced by browsers
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// EligibilityEntry is one row of a pre-computed eligibility list
type EligibilityEntry struct {
	Address string `json:"address"`
	Tokens  uint64 `json:"tokens"`
}

// RegisteredWallet links one or two source addresses to a destination address.
// The JSON form is the persisted format shared with existing data files.
type RegisteredWallet struct {
	AvailAddress    string `json:"avail_address"`
	EVMAddress      string `json:"evm_address"`
	FinalEVMAddress string `json:"final_evm_address"`
	Tokens          uint64 `json:"tokens"`
	Timestamp       string `json:"timestamp"`
	AvailSignature  string `json:"avail_signature"`
	EVMSignature    string `json:"evm_signature"`
}

// HasSource reports whether address is registered as a source of chain in w.
func (w *RegisteredWallet) HasSource(chain Chain, address string) bool {
	switch chain {
	case ChainAvail:
		return w.AvailAddress != "" && w.AvailAddress == address
	case ChainEVM:
		return w.EVMAddress != "" && strings.EqualFold(w.EVMAddress, address)
	default:
		return false
	}
}

// HasDestination reports whether address is the destination of w
func (w *RegisteredWallet) HasDestination(address string) bool {
	return w.FinalEVMAddress != "" && strings.EqualFold(w.FinalEVMAddress, address)
}

// Resolution is the result of looking an address up on one chain
type Resolution struct {
	Eligible          bool
	AlreadyRegistered bool
	Tokens            uint64
}

// EligibilityRequest is the body of an eligibility check.
// Signature and Message prove ownership of Address when supplied.
type EligibilityRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature,omitzero"`
	Message   string `json:"message,omitzero"`
}

// EligibilityResponse is returned by the eligibility checks
type EligibilityResponse struct {
	IsEligible   bool   `json:"isEligible"`
	IsRegistered bool   `json:"isRegistered"`
	Tokens       uint64 `json:"tokens"`
}

// RegistrationStatus is returned by the registration lookup
type RegistrationStatus struct {
	IsRegistered     bool              `json:"isRegistered"`
	RegisteredWallet *RegisteredWallet `json:"registeredWallet"`
}

// EVMSourceStatus is returned by the EVM source lookup
type EVMSourceStatus struct {
	IsRegisteredAsEVM bool              `json:"isRegisteredAsEvm"`
	RegisteredWallet  *RegisteredWallet `json:"registeredWallet"`
}

// RegisterRequest is the body of a registration as sent by the UI.
// Empty fields are treated as absent.
type RegisterRequest struct {
	AvailAddress    string `json:"availAddress,omitzero" validate:"omitempty,ss58"`
	EVMAddress      string `json:"evmAddress,omitzero" validate:"omitempty,evm_addr"`
	FinalEVMAddress string `json:"finalEvmAddress,omitzero" validate:"omitempty,evm_addr"`
	AvailSignature  string `json:"availSignature,omitzero"`
	EVMSignature    string `json:"evmSignature,omitzero"`
	Timestamp       string `json:"timestamp,omitzero" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Normalize trims surrounding whitespace from every field
func (r *RegisterRequest) Normalize() {
	r.AvailAddress = strings.TrimSpace(r.AvailAddress)
	r.EVMAddress = strings.TrimSpace(r.EVMAddress)
	r.FinalEVMAddress = strings.TrimSpace(r.FinalEVMAddress)
	r.AvailSignature = strings.TrimSpace(r.AvailSignature)
	r.EVMSignature = strings.TrimSpace(r.EVMSignature)
	r.Timestamp = strings.TrimSpace(r.Timestamp)
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *RegisteredWallet `json:"data"`
}

// RegistrationsExport is the admin listing of every registration
type RegistrationsExport struct {
	Registrations []RegisteredWallet `json:"registrations"`
	Count         int                `json:"count"`
	TotalTokens   uint64             `json:"total_tokens"`
}

// NewRegistrationsExport summarises records
func NewRegistrationsExport(records []RegisteredWallet) *RegistrationsExport {
	out := &RegistrationsExport{Registrations: records, Count: len(records)}
	if out.Registrations == nil {
		out.Registrations = []RegisteredWallet{}
	}
	for _, r := range records {
		out.TotalTokens += r.Tokens
	}
	return out
}
