package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const bearerPrefix = "Bearer "

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrMisconfigured   = errors.New("auth config invalid")
)

// Claims is the decoded payload of an access token. Values are fixed at
// issuance and never change afterwards.
type Claims struct {
	Subject   int64
	IssuedAt  int64
	ExpiresAt int64
}

// Identity is the authenticated caller of a single request. It carries only
// the subject user ID and is never persisted or shared across requests.
type Identity struct {
	UserID int64
}

// TokenCodec issues and verifies HS256 access tokens. The signing secret is
// loaded once at startup and stays fixed for the process lifetime; tokens are
// self-contained, so no store lookup happens on either path.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: AUTH_SECRET is required", ErrMisconfigured)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: token TTL must be positive", ErrMisconfigured)
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the configured token lifetime.
func (tc *TokenCodec) TTL() time.Duration {
	return tc.ttl
}

// Issue signs a token for the given subject with iat = now and
// exp = now + TTL.
func (tc *TokenCodec) Issue(subject int64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(tc.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Decode verifies the token's signature and expiry and returns its claims.
// Malformed encoding, a signature mismatch, a non-HMAC signing method, and an
// elapsed exp all yield ErrInvalidToken. Whether the subject still exists is
// not checked here.
func (tc *TokenCodec) Decode(raw string) (Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return tc.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	sub, ok := mc["sub"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	iat, _ := mc["iat"].(float64)
	exp, _ := mc["exp"].(float64)

	return Claims{
		Subject:   int64(sub),
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

// Authenticate turns the raw Authorization header value into an Identity.
// A missing header, a value without the "Bearer " prefix, and any decode
// failure all collapse into ErrUnauthenticated so the response reveals
// nothing about which check failed.
func (tc *TokenCodec) Authenticate(header string) (Identity, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return Identity{}, ErrUnauthenticated
	}
	claims, err := tc.Decode(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}
	return Identity{UserID: claims.Subject}, nil
}
