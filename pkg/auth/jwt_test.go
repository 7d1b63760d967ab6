package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chainsafe/airdrop-registry/pkg/auth"
)

type jwksFixture struct {
	key    *rsa.PrivateKey
	kid    string
	server *httptest.Server
	hits   atomic.Int32
}

func newJWKSFixture(t *testing.T) *jwksFixture {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate RSA key: %v", err)
	}

	f := &jwksFixture{key: key, kid: "test-key"}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		_ = json.NewEncoder(w).Encode(auth.JWKS{Keys: []auth.JWK{{
			Kid: f.kid,
			Kty: "RSA",
			Alg: "RS256",
			Use: "sig",
			N:   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}}})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *jwksFixture) sign(t *testing.T, kid string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	s, err := token.SignedString(f.key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return s
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub": "ops@example.com",
		"iss": "https://issuer.example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func TestJWTValidator_ValidateToken(t *testing.T) {
	f := newJWKSFixture(t)
	v := auth.NewJWTValidator(f.server.URL, "https://issuer.example.com")

	claims, err := v.ValidateToken(context.Background(), f.sign(t, f.kid, validClaims()))
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if sub, _ := claims.GetSubject(); sub != "ops@example.com" {
		t.Fatalf("unexpected subject %q", sub)
	}

	// Cached key is reused
	if _, err := v.ValidateToken(context.Background(), f.sign(t, f.kid, validClaims())); err != nil {
		t.Fatalf("second ValidateToken failed: %v", err)
	}
	if hits := f.hits.Load(); hits != 1 {
		t.Fatalf("expected JWKS to be fetched once, got %d", hits)
	}
}

func TestJWTValidator_Rejects(t *testing.T) {
	f := newJWKSFixture(t)
	v := auth.NewJWTValidator(f.server.URL, "https://issuer.example.com")

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "https://evil.example.com"

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	noExp := validClaims()
	delete(noExp, "exp")

	tests := map[string]string{
		"wrong issuer": f.sign(t, f.kid, wrongIssuer),
		"expired":      f.sign(t, f.kid, expired),
		"missing exp":  f.sign(t, f.kid, noExp),
		"unknown kid":  f.sign(t, "other-key", validClaims()),
		"garbage":      "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := v.ValidateToken(context.Background(), token); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestJWTValidator_HMACRejected(t *testing.T) {
	f := newJWKSFixture(t)
	v := auth.NewJWTValidator(f.server.URL, "")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
	token.Header["kid"] = f.kid
	s, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := v.ValidateToken(context.Background(), s); err == nil {
		t.Fatalf("expected HMAC token to be rejected")
	}
}

func TestJWTValidator_NotConfigured(t *testing.T) {
	v := auth.NewJWTValidator("", "")
	if v.IsConfigured() {
		t.Fatalf("expected validator to be unconfigured")
	}
}
