package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	apperrors "github.com/chainsafe/airdrop-registry/pkg/app/errors"
)

const serviceName = "AirdropService"

const (
	logMessageMaxLen     = 50
	signatureDisplaySize = 16
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the airdrop Service.
// Rejections are logged at warn level, dependency failures at error level.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Resolve wraps the service method with logging
func (ls *logService) Resolve(ctx context.Context, address string, chain airdrop.Chain) (res *airdrop.Resolution, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logFailure("Resolve", time.Since(start), err, zap.String("address", address))
			return
		}
		ls.logger.Debug("Resolve completed",
			zap.String("service", serviceName),
			zap.String("method", "Resolve"),
			zap.String("chain", string(chain)),
			zap.String("address", address),
			zap.Bool("eligible", res.Eligible),
			zap.Bool("already_registered", res.AlreadyRegistered),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.Resolve(ctx, address, chain)
}

// CheckEligibility wraps the service method with logging
func (ls *logService) CheckEligibility(
	ctx context.Context,
	chain airdrop.Chain,
	req *airdrop.EligibilityRequest,
) (resp *airdrop.EligibilityResponse, err error) {
	start := time.Now()

	ls.logger.Info("CheckEligibility started",
		zap.String("service", serviceName),
		zap.String("method", "CheckEligibility"),
		zap.String("chain", string(chain)),
		zap.String("address", req.Address),
		zap.String("message", truncateString(req.Message, logMessageMaxLen)),
		zap.String("signature", redactSignature(req.Signature)),
	)

	defer func() {
		if err != nil {
			ls.logFailure("CheckEligibility", time.Since(start), err, zap.String("address", req.Address))
			return
		}
		ls.logger.Info("CheckEligibility completed",
			zap.String("service", serviceName),
			zap.String("method", "CheckEligibility"),
			zap.String("address", req.Address),
			zap.Bool("is_eligible", resp.IsEligible),
			zap.Bool("is_registered", resp.IsRegistered),
			zap.Uint64("tokens", resp.Tokens),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.CheckEligibility(ctx, chain, req)
}

// CheckRegistration wraps the service method with logging
func (ls *logService) CheckRegistration(ctx context.Context, address string) (resp *airdrop.RegistrationStatus, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logFailure("CheckRegistration", time.Since(start), err, zap.String("address", address))
			return
		}
		ls.logger.Info("CheckRegistration completed",
			zap.String("service", serviceName),
			zap.String("method", "CheckRegistration"),
			zap.String("address", address),
			zap.Bool("is_registered", resp.IsRegistered),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.CheckRegistration(ctx, address)
}

// CheckRegistrationAsEVM wraps the service method with logging
func (ls *logService) CheckRegistrationAsEVM(ctx context.Context, address string) (resp *airdrop.EVMSourceStatus, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logFailure("CheckRegistrationAsEVM", time.Since(start), err, zap.String("address", address))
			return
		}
		ls.logger.Info("CheckRegistrationAsEVM completed",
			zap.String("service", serviceName),
			zap.String("method", "CheckRegistrationAsEVM"),
			zap.String("address", address),
			zap.Bool("is_registered_as_evm", resp.IsRegisteredAsEVM),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.CheckRegistrationAsEVM(ctx, address)
}

// Register wraps the service method with logging
func (ls *logService) Register(ctx context.Context, req *airdrop.RegisterRequest) (rec *airdrop.RegisteredWallet, err error) {
	start := time.Now()

	ls.logger.Info("Register started",
		zap.String("service", serviceName),
		zap.String("method", "Register"),
		zap.String("avail_address", req.AvailAddress),
		zap.String("evm_address", req.EVMAddress),
		zap.String("final_evm_address", req.FinalEVMAddress),
		zap.String("avail_signature", redactSignature(req.AvailSignature)),
		zap.String("evm_signature", redactSignature(req.EVMSignature)),
	)

	defer func() {
		if err != nil {
			ls.logFailure("Register", time.Since(start), err,
				zap.String("avail_address", req.AvailAddress),
				zap.String("evm_address", req.EVMAddress),
			)
			return
		}
		ls.logger.Info("Register completed",
			zap.String("service", serviceName),
			zap.String("method", "Register"),
			zap.String("avail_address", rec.AvailAddress),
			zap.String("evm_address", rec.EVMAddress),
			zap.String("final_evm_address", rec.FinalEVMAddress),
			zap.Uint64("tokens", rec.Tokens),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.Register(ctx, req)
}

// ListRegistrations wraps the service method with logging
func (ls *logService) ListRegistrations(ctx context.Context) (resp *airdrop.RegistrationsExport, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logFailure("ListRegistrations", time.Since(start), err)
			return
		}
		ls.logger.Info("ListRegistrations completed",
			zap.String("service", serviceName),
			zap.String("method", "ListRegistrations"),
			zap.Int("count", resp.Count),
			zap.Uint64("total_tokens", resp.TotalTokens),
			zap.Duration("duration", time.Since(start)),
		)
	}()

	return ls.svc.ListRegistrations(ctx)
}

func (ls *logService) logFailure(method string, duration time.Duration, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", duration),
		zap.Error(err),
	)
	if apperrors.IsInternalError(err) {
		ls.logger.Error(method+" failed", fields...)
		return
	}
	ls.logger.Warn(method+" rejected", append(fields, zap.String("type", apperrors.TypeOf(err)))...)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// redactSignature shows only signature metadata
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	sigLen := len(sig)
	if sigLen > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", sig[:8], sig[sigLen-4:], sigLen)
	}
	return fmt.Sprintf("<%d bytes>", sigLen)
}
