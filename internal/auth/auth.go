// Package auth verifies the bearer token attached to an incoming
// request. It is a thin adapter over golang-jwt, grounded in
// original_source/solitaire/process_centric: every handler there reads
// the Authorization header, strips the "Bearer " prefix, decodes the
// token with a shared secret and algorithm, and treats any decode
// failure (missing header, bad signature, expired token) alike as a
// 401. Here every one of those failure modes collapses to the single
// Unauthenticated error (spec §7).
package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Unauthenticated covers a missing Authorization header, a malformed
// bearer token, a bad signature, or an expired token.
var Unauthenticated = errors.New("auth: unauthenticated")

// Verifier extracts the subject (user id) from a request's bearer
// token. It is consumed but not owned by the façade (spec §6).
type Verifier interface {
	Verify(authorizationHeader string) (userID string, err error)
}

// JWTVerifier verifies HMAC-signed tokens with a fixed secret and
// signing method, matching the single shared JWT_SECRET_KEY /
// JWT_ALGORITHM pair the original services read from the environment.
type JWTVerifier struct {
	secret []byte
	method jwt.SigningMethod
}

// NewJWTVerifier returns a Verifier for the given secret and signing
// algorithm name (e.g. "HS256"). It fails fast on an unrecognized
// algorithm rather than building a Verifier that would panic on its
// first Verify call.
func NewJWTVerifier(secret []byte, algorithm string) (*JWTVerifier, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("auth: unsupported signing algorithm %q", algorithm)
	}
	return &JWTVerifier{secret: secret, method: method}, nil
}

// Verify parses the raw "Authorization" header value, which must be
// of the form "Bearer <token>", and returns the token's "sub" claim.
func (v *JWTVerifier) Verify(authorizationHeader string) (string, error) {
	if authorizationHeader == "" {
		return "", Unauthenticated
	}
	raw := strings.TrimPrefix(authorizationHeader, "Bearer ")
	if raw == authorizationHeader {
		return "", Unauthenticated
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != v.method.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil {
		return "", Unauthenticated
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", Unauthenticated
	}
	return sub, nil
}
