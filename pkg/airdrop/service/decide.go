package service

import (
	"strings"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	apperrors "github.com/chainsafe/airdrop-registry/pkg/app/errors"
)

// registrationPlan is the record to append and the address the EVM signature
// must recover to.
type registrationPlan struct {
	record    airdrop.RegisteredWallet
	evmSigner string
}

func findEntry(entries []airdrop.EligibilityEntry, chain airdrop.Chain, address string) (airdrop.EligibilityEntry, bool) {
	if address == "" {
		return airdrop.EligibilityEntry{}, false
	}
	for _, e := range entries {
		if chain == airdrop.ChainEVM {
			if strings.EqualFold(e.Address, address) {
				return e, true
			}
			continue
		}
		if e.Address == address {
			return e, true
		}
	}
	return airdrop.EligibilityEntry{}, false
}

func isSourceRegistered(records []airdrop.RegisteredWallet, chain airdrop.Chain, address string) bool {
	for i := range records {
		if records[i].HasSource(chain, address) {
			return true
		}
	}
	return false
}

func isDestination(records []airdrop.RegisteredWallet, address string) bool {
	for i := range records {
		if records[i].HasDestination(address) {
			return true
		}
	}
	return false
}

// resolve answers a read-only eligibility lookup. An EVM address that already
// receives tokens as a destination counts as registered.
func resolve(address string, chain airdrop.Chain, entries []airdrop.EligibilityEntry, records []airdrop.RegisteredWallet) *airdrop.Resolution {
	entry, listed := findEntry(entries, chain, address)

	registered := isSourceRegistered(records, chain, address)
	if chain == airdrop.ChainEVM && !registered {
		registered = isDestination(records, address)
	}

	return &airdrop.Resolution{
		Eligible:          listed && !registered,
		AlreadyRegistered: registered,
		Tokens:            entry.Tokens,
	}
}

// findRegistration matches the Avail source exactly first, then an EVM source
// or destination ignoring case.
func findRegistration(records []airdrop.RegisteredWallet, address string) *airdrop.RegisteredWallet {
	for i := range records {
		if records[i].HasSource(airdrop.ChainAvail, address) {
			return &records[i]
		}
	}
	for i := range records {
		if records[i].HasSource(airdrop.ChainEVM, address) || records[i].HasDestination(address) {
			return &records[i]
		}
	}
	return nil
}

// decide applies the registration rules to a validated request. Only source
// addresses count as registered here; reusing a destination is allowed.
func decide(
	req *airdrop.RegisterRequest,
	availEntries, evmEntries []airdrop.EligibilityEntry,
	records []airdrop.RegisteredWallet,
) (*registrationPlan, error) {
	availEntry, availListed := findEntry(availEntries, airdrop.ChainAvail, req.AvailAddress)
	evmEntry, evmListed := findEntry(evmEntries, airdrop.ChainEVM, req.EVMAddress)

	availRegistered := req.AvailAddress != "" && isSourceRegistered(records, airdrop.ChainAvail, req.AvailAddress)
	evmRegistered := req.EVMAddress != "" && isSourceRegistered(records, airdrop.ChainEVM, req.EVMAddress)

	registerAvail := availListed && !availRegistered
	registerEVM := evmListed && !evmRegistered

	plan := &registrationPlan{
		record: airdrop.RegisteredWallet{
			FinalEVMAddress: req.FinalEVMAddress,
			Timestamp:       req.Timestamp,
		},
		evmSigner: req.FinalEVMAddress,
	}
	rec := &plan.record

	switch {
	case registerAvail && registerEVM:
		if req.AvailSignature == "" || req.EVMSignature == "" {
			return nil, apperrors.RejectionError(ErrMissingSignature, TypeSignature, "Both Avail and EVM signatures are required")
		}
		rec.AvailAddress = req.AvailAddress
		rec.EVMAddress = req.EVMAddress
		rec.AvailSignature = req.AvailSignature
		rec.EVMSignature = req.EVMSignature
		rec.Tokens = availEntry.Tokens + evmEntry.Tokens
		plan.evmSigner = req.EVMAddress

	case registerAvail:
		// The EVM signature authorises the destination.
		if req.AvailSignature == "" || req.EVMSignature == "" {
			return nil, apperrors.RejectionError(ErrMissingSignature, TypeSignature, "Both Avail and EVM signatures are required")
		}
		rec.AvailAddress = req.AvailAddress
		rec.AvailSignature = req.AvailSignature
		rec.EVMSignature = req.EVMSignature
		rec.Tokens = availEntry.Tokens

	case registerEVM:
		if req.EVMSignature == "" {
			return nil, apperrors.RejectionError(ErrMissingSignature, TypeSignature, "EVM signature is required")
		}
		rec.EVMAddress = req.EVMAddress
		rec.EVMSignature = req.EVMSignature
		rec.Tokens = evmEntry.Tokens
		plan.evmSigner = req.EVMAddress

	case availRegistered:
		return nil, apperrors.ConflictError(ErrAlreadyRegistered, TypeAvail, "This Avail address is already registered")

	case evmRegistered:
		return nil, apperrors.ConflictError(ErrAlreadyRegistered, TypeEVM, "This EVM address is already registered as a source address")

	case req.AvailAddress != "" && !availListed:
		return nil, apperrors.RejectionError(ErrNotEligible, TypeAvail, "This Avail address is not eligible for the airdrop")

	case req.EVMAddress != "" && !evmListed:
		return nil, apperrors.RejectionError(ErrNotEligible, TypeEVM, "This EVM address is not eligible for the airdrop")
	}

	if rec.Tokens == 0 {
		return nil, apperrors.RejectionError(ErrNoEligibleAddress, TypeEligibility, "No eligible unregistered addresses provided")
	}
	if req.FinalEVMAddress == "" {
		return nil, apperrors.RejectionError(ErrMissingDestination, TypeEVM, "Final EVM address required for token distribution")
	}

	return plan, nil
}
