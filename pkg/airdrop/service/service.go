package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/internal/metrics"
	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	"github.com/chainsafe/airdrop-registry/pkg/airdropstore"
	apperrors "github.com/chainsafe/airdrop-registry/pkg/app/errors"
	"github.com/chainsafe/airdrop-registry/pkg/config"
)

var (
	ErrNotEligible        = errors.New("not eligible")
	ErrAlreadyRegistered  = errors.New("already registered")
	ErrMissingSignature   = errors.New("missing signature")
	ErrMissingDestination = errors.New("missing destination address")
	ErrStoreUnavailable   = errors.New("store unavailable")
	ErrMalformedRequest   = errors.New("malformed request")
	ErrNoEligibleAddress  = errors.New("no eligible unregistered addresses provided")
	ErrInvalidSignature   = errors.New("invalid signature")
)

// Rejection tags surfaced to clients in the error "type" field
const (
	TypeAvail       = "avail"
	TypeEVM         = "evm"
	TypeSignature   = "signature"
	TypeEligibility = "eligibility"
	TypeRequest     = "request"
)

// Store is the narrow data-access interface for the airdrop service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	LoadEligibility(ctx context.Context, chain airdrop.Chain) ([]airdrop.EligibilityEntry, error)
	LoadRegistrations(ctx context.Context) ([]airdrop.RegisteredWallet, error)
	AppendRegistration(ctx context.Context, rec *airdrop.RegisteredWallet) error
}

// SignatureVerifier proves wallet ownership on both chains
type SignatureVerifier interface {
	VerifyAvail(address, message, signature string) error
	VerifyEVM(address, message, signature string) error
}

// Service defines the interface for the airdrop eligibility and registration logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Resolve(ctx context.Context, address string, chain airdrop.Chain) (*airdrop.Resolution, error)
	CheckEligibility(ctx context.Context, chain airdrop.Chain, req *airdrop.EligibilityRequest) (*airdrop.EligibilityResponse, error)
	CheckRegistration(ctx context.Context, address string) (*airdrop.RegistrationStatus, error)
	CheckRegistrationAsEVM(ctx context.Context, address string) (*airdrop.EVMSourceStatus, error)
	Register(ctx context.Context, req *airdrop.RegisterRequest) (*airdrop.RegisteredWallet, error)
	ListRegistrations(ctx context.Context) (*airdrop.RegistrationsExport, error)
}

type airdropService struct {
	store           Store
	verifier        SignatureVerifier
	logger          *zap.Logger
	registerMessage string
	requireOnCheck  bool
	now             func() time.Time

	// writeMu serialises registrations: load, decide, verify and append run
	// as one unit per process.
	writeMu sync.Mutex
}

// NewService creates a new airdrop service
func NewService(
	store Store,
	verifier SignatureVerifier,
	logger *zap.Logger,
	cfg config.SignatureConfig,
) Service {
	return &airdropService{
		store:           store,
		verifier:        verifier,
		logger:          logger,
		registerMessage: cfg.RegisterMessage,
		requireOnCheck:  cfg.RequireOnCheck,
		now:             time.Now,
	}
}

// Resolve looks address up on chain. It never writes.
func (s *airdropService) Resolve(ctx context.Context, address string, chain airdrop.Chain) (*airdrop.Resolution, error) {
	if _, err := airdrop.ParseChain(string(chain)); err != nil {
		return nil, malformed(err, err.Error())
	}

	entries, err := s.loadEligibility(ctx, chain)
	if err != nil {
		return nil, err
	}
	records, err := s.loadRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	return resolve(address, chain, entries, records), nil
}

// CheckEligibility resolves req.Address after verifying the optional ownership proof.
func (s *airdropService) CheckEligibility(
	ctx context.Context,
	chain airdrop.Chain,
	req *airdrop.EligibilityRequest,
) (*airdrop.EligibilityResponse, error) {
	if err := airdrop.ValidateAddress(chain, req.Address); err != nil {
		return nil, malformed(err, err.Error())
	}

	if req.Signature != "" || s.requireOnCheck {
		if req.Signature == "" || req.Message == "" {
			return nil, apperrors.RejectionError(ErrMissingSignature, TypeSignature, "Signature and message are required")
		}
		if err := s.verify(chain, req.Address, req.Message, req.Signature); err != nil {
			return nil, err
		}
	}

	res, err := s.Resolve(ctx, req.Address, chain)
	if err != nil {
		metrics.EligibilityChecks.WithLabelValues(string(chain), metrics.ResultError).Inc()
		return nil, err
	}

	result := metrics.ResultNotEligible
	switch {
	case res.Eligible:
		result = metrics.ResultEligible
	case res.AlreadyRegistered:
		result = metrics.ResultRegistered
	}
	metrics.EligibilityChecks.WithLabelValues(string(chain), result).Inc()

	return &airdrop.EligibilityResponse{
		IsEligible:   res.Eligible,
		IsRegistered: res.AlreadyRegistered,
		Tokens:       res.Tokens,
	}, nil
}

// CheckRegistration finds the record address belongs to, matching the Avail
// source first and then the EVM source or destination.
func (s *airdropService) CheckRegistration(ctx context.Context, address string) (*airdrop.RegistrationStatus, error) {
	if address == "" {
		return nil, malformed(errors.New("empty address"), "address is required")
	}

	records, err := s.loadRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	if rec := findRegistration(records, address); rec != nil {
		return &airdrop.RegistrationStatus{IsRegistered: true, RegisteredWallet: rec}, nil
	}
	return &airdrop.RegistrationStatus{}, nil
}

// CheckRegistrationAsEVM reports whether address is registered as an EVM source.
func (s *airdropService) CheckRegistrationAsEVM(ctx context.Context, address string) (*airdrop.EVMSourceStatus, error) {
	if err := airdrop.ValidateAddress(airdrop.ChainEVM, address); err != nil {
		return nil, malformed(err, err.Error())
	}

	records, err := s.loadRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].HasSource(airdrop.ChainEVM, address) {
			return &airdrop.EVMSourceStatus{IsRegisteredAsEVM: true, RegisteredWallet: &records[i]}, nil
		}
	}
	return &airdrop.EVMSourceStatus{}, nil
}

// Register links the eligible, unregistered sources of req to its destination.
//
// The registration process:
//  1. Validates the request shape
//  2. Loads eligibility and registrations inside the writer lock
//  3. Decides which sources are registered and which signatures are required
//  4. Verifies the required signatures against the registration message
//  5. Appends exactly one record
func (s *airdropService) Register(ctx context.Context, req *airdrop.RegisterRequest) (rec *airdrop.RegisteredWallet, err error) {
	start := s.now()
	defer func() { observeRegistration(start, s.now(), rec, err) }()

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, malformed(err, err.Error())
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var availEntries, evmEntries []airdrop.EligibilityEntry
	if req.AvailAddress != "" {
		if availEntries, err = s.loadEligibility(ctx, airdrop.ChainAvail); err != nil {
			return nil, err
		}
	}
	if req.EVMAddress != "" {
		if evmEntries, err = s.loadEligibility(ctx, airdrop.ChainEVM); err != nil {
			return nil, err
		}
	}
	records, err := s.loadRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := decide(req, availEntries, evmEntries, records)
	if err != nil {
		return nil, err
	}

	if plan.record.AvailAddress != "" {
		if err := s.verify(airdrop.ChainAvail, req.AvailAddress, s.registerMessage, req.AvailSignature); err != nil {
			return nil, err
		}
	}
	if err := s.verify(airdrop.ChainEVM, plan.evmSigner, s.registerMessage, req.EVMSignature); err != nil {
		return nil, err
	}

	out := plan.record
	if out.Timestamp == "" {
		out.Timestamp = s.now().UTC().Format(airdrop.TimestampLayout)
	}

	if err := s.store.AppendRegistration(ctx, &out); err != nil {
		if errors.Is(err, airdropstore.ErrDuplicateSource) {
			typ := TypeEVM
			if out.AvailAddress != "" {
				typ = TypeAvail
			}
			return nil, apperrors.ConflictError(fmt.Errorf("%w: %w", ErrAlreadyRegistered, err), typ, "This address is already registered")
		}
		return nil, s.storeError(metrics.OperationAppendRegs, err)
	}

	s.logger.Info("Registration stored",
		zap.String("avail_address", out.AvailAddress),
		zap.String("evm_address", out.EVMAddress),
		zap.String("final_evm_address", out.FinalEVMAddress),
		zap.Uint64("tokens", out.Tokens),
	)
	return &out, nil
}

// ListRegistrations exports every registration for operators.
func (s *airdropService) ListRegistrations(ctx context.Context) (*airdrop.RegistrationsExport, error) {
	records, err := s.loadRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	return airdrop.NewRegistrationsExport(records), nil
}

func (s *airdropService) verify(chain airdrop.Chain, address, message, signature string) error {
	var err error
	switch chain {
	case airdrop.ChainAvail:
		err = s.verifier.VerifyAvail(address, message, signature)
	case airdrop.ChainEVM:
		err = s.verifier.VerifyEVM(address, message, signature)
	default:
		return apperrors.GeneralError(fmt.Errorf("no signature scheme for chain %q", chain))
	}
	if err == nil {
		return nil
	}

	label := "EVM"
	if chain == airdrop.ChainAvail {
		label = "Avail"
	}
	return apperrors.UnAuthorizedError(fmt.Errorf("%w: %w", ErrInvalidSignature, err), TypeSignature,
		fmt.Sprintf("Invalid %s signature", label))
}

func (s *airdropService) loadEligibility(ctx context.Context, chain airdrop.Chain) ([]airdrop.EligibilityEntry, error) {
	entries, err := s.store.LoadEligibility(ctx, chain)
	if err != nil {
		return nil, s.storeError(metrics.OperationLoadElig, err)
	}
	return entries, nil
}

func (s *airdropService) loadRegistrations(ctx context.Context) ([]airdrop.RegisteredWallet, error) {
	records, err := s.store.LoadRegistrations(ctx)
	if err != nil {
		return nil, s.storeError(metrics.OperationLoadRegs, err)
	}
	return records, nil
}

func (s *airdropService) storeError(op string, err error) error {
	metrics.StoreErrors.WithLabelValues(op).Inc()
	s.logger.Error("Airdrop store failure", zap.String("operation", op), zap.Error(err))
	return apperrors.DependencyError(fmt.Errorf("%w: %w", ErrStoreUnavailable, err), "Failed to access airdrop data")
}

func malformed(err error, msg string) error {
	return apperrors.RejectionError(fmt.Errorf("%w: %w", ErrMalformedRequest, err), TypeRequest, msg)
}

func observeRegistration(start, end time.Time, rec *airdrop.RegisteredWallet, err error) {
	metrics.RegistrationDuration.Observe(end.Sub(start).Seconds())

	switch {
	case err == nil:
		metrics.Registrations.WithLabelValues(metrics.OutcomeSuccess, "").Inc()
		metrics.RegisteredTokens.Add(float64(rec.Tokens))
	case apperrors.IsInternalError(err):
		metrics.Registrations.WithLabelValues(metrics.OutcomeError, "").Inc()
	default:
		metrics.Registrations.WithLabelValues(metrics.OutcomeRejected, apperrors.TypeOf(err)).Inc()
	}
}
