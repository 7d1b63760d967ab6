package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	"github.com/chainsafe/airdrop-registry/pkg/airdrop/service/mocks"
	apperrors "github.com/chainsafe/airdrop-registry/pkg/app/errors"
)

func TestLogService_RedactsSignatures(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := mocks.NewService(t)
	ls := NewLog(svc, zap.New(core))

	req := &airdrop.RegisterRequest{
		AvailAddress:   testAlice,
		AvailSignature: "0x" + "ab" + "0123456789abcdef0123456789abcdef",
	}
	svc.EXPECT().Register(mock.Anything, req).Return(&airdrop.RegisteredWallet{AvailAddress: testAlice, Tokens: 1}, nil)

	_, err := ls.Register(context.Background(), req)
	require.NoError(t, err)

	started := logs.FilterMessage("Register started").All()
	require.Len(t, started, 1)
	sig := started[0].ContextMap()["avail_signature"]
	require.Equal(t, "0xab0123...cdef (36 bytes)", sig)
	require.Equal(t, "<empty>", started[0].ContextMap()["evm_signature"])
	require.Equal(t, 1, logs.FilterMessage("Register completed").Len())
}

func TestLogService_RejectionsLogAtWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := mocks.NewService(t)
	ls := NewLog(svc, zap.New(core))

	svc.EXPECT().CheckRegistration(mock.Anything, "").
		Return(nil, apperrors.RejectionError(ErrMalformedRequest, TypeRequest, "address is required"))
	svc.EXPECT().ListRegistrations(mock.Anything).
		Return(nil, apperrors.DependencyError(ErrStoreUnavailable, "Failed to access airdrop data"))

	_, err := ls.CheckRegistration(context.Background(), "")
	require.Error(t, err)
	_, err = ls.ListRegistrations(context.Background())
	require.Error(t, err)

	rejected := logs.FilterMessage("CheckRegistration rejected").All()
	require.Len(t, rejected, 1)
	require.Equal(t, zapcore.WarnLevel, rejected[0].Level)
	require.Equal(t, TypeRequest, rejected[0].ContextMap()["type"])

	failed := logs.FilterMessage("ListRegistrations failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, zapcore.ErrorLevel, failed[0].Level)
}
