package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signed(t, jwt.MapClaims{"sub": "ana", "exp": exp.Unix()})

	got, ok := Expiry(raw)
	if !ok {
		t.Fatal("expiry not found")
	}
	if !got.Equal(exp) {
		t.Fatalf("expiry = %v, want %v", got, exp)
	}
}

func TestExpiryAbsent(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"sub": "ana"})
	if _, ok := Expiry(raw); ok {
		t.Fatal("expiry reported for token without exp claim")
	}
}

func TestOpaqueTokenTolerated(t *testing.T) {
	// Tokens are opaque to the session core; non-JWT values simply yield
	// no claims.
	if _, ok := Expiry("not-a-jwt"); ok {
		t.Fatal("expiry from opaque token")
	}
	if _, ok := Subject("not-a-jwt"); ok {
		t.Fatal("subject from opaque token")
	}
}

func TestSubject(t *testing.T) {
	raw := signed(t, jwt.MapClaims{"sub": "ana"})
	sub, ok := Subject(raw)
	if !ok || sub != "ana" {
		t.Fatalf("subject = %q (%v), want ana", sub, ok)
	}
}
