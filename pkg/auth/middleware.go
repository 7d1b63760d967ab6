package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/airdrop-registry/pkg/app/errors"
	apphttp "github.com/chainsafe/airdrop-registry/pkg/app/http"
)

// TokenValidator validates a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (jwt.MapClaims, error)
}

var errMissingBearer = errors.New("missing bearer token")

// RequireBearer rejects requests without a valid bearer token and stores the
// token's claims in the request context.
func RequireBearer(validator TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(errMissingBearer, "", "authorization required"))
				return
			}

			claims, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Warn("Rejected admin token", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "", "invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
