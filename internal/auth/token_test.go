package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestCodec(t *testing.T) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenCodec error: %v", err)
	}
	return codec
}

func TestNewTokenCodec_Misconfigured(t *testing.T) {
	if _, err := NewTokenCodec("", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret, got nil")
	}
	if _, err := NewTokenCodec("secret", 0); err == nil {
		t.Fatalf("expected error for zero TTL, got nil")
	}
}

func TestIssueDecode_Roundtrip(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if claims.Subject != 42 {
		t.Fatalf("subject = %d, want 42", claims.Subject)
	}
	if got := claims.ExpiresAt - claims.IssuedAt; got != int64(time.Hour.Seconds()) {
		t.Fatalf("exp-iat = %d, want %d", got, int64(time.Hour.Seconds()))
	}
}

func TestDecode_Expired(t *testing.T) {
	codec := newTestCodec(t)

	// valid signature, exp already elapsed
	now := time.Now().UTC()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": int64(42),
		"iat": now.Add(-2 * time.Hour).Unix(),
		"exp": now.Add(-time.Hour).Unix(),
	})
	raw, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if _, err := codec.Decode(raw); err != ErrInvalidToken {
		t.Fatalf("Decode(expired) = %v, want ErrInvalidToken", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	codec := newTestCodec(t)

	other, err := NewTokenCodec("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenCodec error: %v", err)
	}
	token, err := other.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := codec.Decode(token); err != ErrInvalidToken {
		t.Fatalf("Decode(wrong secret) = %v, want ErrInvalidToken", err)
	}
}

func TestDecode_TamperedSignature(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	last := token[len(token)-1]
	flipped := byte('A')
	if last == flipped {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	if _, err := codec.Decode(tampered); err != ErrInvalidToken {
		t.Fatalf("Decode(tampered) = %v, want ErrInvalidToken", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	codec := newTestCodec(t)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not-a-jwt", raw: "not.a.jwt"},
		{name: "missing-segments", raw: "onlyonesegment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := codec.Decode(tt.raw); err != ErrInvalidToken {
				t.Fatalf("Decode(%q) = %v, want ErrInvalidToken", tt.raw, err)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tests := []struct {
		name    string
		header  string
		want    int64
		wantErr bool
	}{
		{name: "valid", header: "Bearer " + token, want: 7},
		{name: "absent-header", header: "", wantErr: true},
		{name: "no-bearer-prefix", header: "Token " + token, wantErr: true},
		{name: "lowercase-prefix", header: "bearer " + token, wantErr: true},
		{name: "garbage-token", header: "Bearer garbage", wantErr: true},
		{name: "prefix-only", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := codec.Authenticate(tt.header)
			if tt.wantErr {
				if err != ErrUnauthenticated {
					t.Fatalf("Authenticate(%q) = %v, want ErrUnauthenticated", tt.header, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate error: %v", err)
			}
			if identity.UserID != tt.want {
				t.Fatalf("UserID = %d, want %d", identity.UserID, tt.want)
			}
		})
	}
}

func TestAuthenticate_Idempotent(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(7)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	header := "Bearer " + token

	first, err := codec.Authenticate(header)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	second, err := codec.Authenticate(header)
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if first != second {
		t.Fatalf("same header gave different identities: %+v vs %+v", first, second)
	}
}

func TestIssue_TokensAreOpaqueStrings(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token %q does not have three segments", token)
	}
}
