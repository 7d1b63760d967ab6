package service

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/chainsafe/airdrop-registry/pkg/airdrop"
	apperrors "github.com/chainsafe/airdrop-registry/pkg/app/errors"
	apphttp "github.com/chainsafe/airdrop-registry/pkg/app/http"
	"github.com/chainsafe/airdrop-registry/pkg/auth"
)

const maxBodySize = 1 << 20 // 1MB

const registerSuccessMessage = "Addresses registered successfully"

const (
	retiredLookupMessage = "This endpoint has been deprecated for security reasons. " +
		"Please use the new POST endpoint with signature verification."
	retiredDebugMessage = "This endpoint has been disabled for security reasons."
)

// retiredRoutes are unsigned lookups from earlier releases. They answer 403 so
// old clients get a clear message instead of a 404 or 405.
var retiredRoutes = map[string]string{
	"/api/check-eligibility/{address}":         retiredLookupMessage,
	"/api/check-evm-eligibility/{address}":     retiredLookupMessage,
	"/api/check-raw-eligibility/{address}":     retiredLookupMessage,
	"/api/check-raw-evm-eligibility/{address}": retiredLookupMessage,
	"/api/debug-db-check/{address}":            retiredDebugMessage,
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the public airdrop endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/api/check-eligibility", apphttp.HandleError(h.checkAvailEligibility))
	r.Post("/api/check-evm-eligibility", apphttp.HandleError(h.checkEVMEligibility))
	r.Get("/api/check-registration/{address}", apphttp.HandleError(h.checkRegistration))
	r.Get("/api/check-registration-as-evm/{address}", apphttp.HandleError(h.checkRegistrationAsEVM))
	r.Post("/api/register", apphttp.HandleError(h.register))

	for pattern, message := range retiredRoutes {
		r.Get(pattern, apphttp.HandleError(retired(message)))
	}
}

func retired(message string) apphttp.HandlerFunc {
	return func(http.ResponseWriter, *http.Request) error {
		return apperrors.ForbiddenError(nil, message)
	}
}

// RegisterAdminRoutes registers operator endpoints. Callers are expected to
// mount them behind authentication.
func RegisterAdminRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/admin/registrations", apphttp.HandleError(h.listRegistrations))
}

func (h *HTTP) checkAvailEligibility(w http.ResponseWriter, r *http.Request) error {
	return h.checkEligibility(w, r, airdrop.ChainAvail)
}

func (h *HTTP) checkEVMEligibility(w http.ResponseWriter, r *http.Request) error {
	return h.checkEligibility(w, r, airdrop.ChainEVM)
}

func (h *HTTP) checkEligibility(w http.ResponseWriter, r *http.Request, chain airdrop.Chain) error {
	var req airdrop.EligibilityRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	resp, err := h.service.CheckEligibility(r.Context(), chain, &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) checkRegistration(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.CheckRegistration(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) checkRegistrationAsEVM(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.CheckRegistrationAsEVM(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	var req airdrop.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	rec, err := h.service.Register(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &airdrop.RegisterResponse{
		Success: true,
		Message: registerSuccessMessage,
		Data:    rec,
	})
	return nil
}

func (h *HTTP) listRegistrations(w http.ResponseWriter, r *http.Request) error {
	subject, _ := auth.SubjectFromContext(r.Context())
	h.logger.Info("Exporting registrations", zap.String("subject", subject))

	resp, err := h.service.ListRegistrations(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.RejectionError(err, TypeRequest, "invalid JSON")
	}
	return nil
}
