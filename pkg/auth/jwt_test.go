package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-jwt-secret-must-be-32-bytes"

func TestJWTResolver_RoundTrip(t *testing.T) {
	j := NewJWTResolver(testSecret, "shopping-test")
	token, err := j.Sign(Identity{UserID: "user123", Username: "sam", Email: "sam@example.com"}, time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/lists", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	id, err := j.Resolve(r)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.UserID != "user123" || id.Username != "sam" || id.Email != "sam@example.com" {
		t.Fatalf("unexpected identity %+v", id)
	}
}

func TestJWTResolver_Rejections(t *testing.T) {
	j := NewJWTResolver(testSecret, "shopping-test")
	expired, _ := j.Sign(Identity{UserID: "u"}, -time.Minute)
	otherKey, _ := NewJWTResolver("another-secret-that-is-32-bytes!", "shopping-test").Sign(Identity{UserID: "u"}, time.Hour)
	otherIssuer, _ := NewJWTResolver(testSecret, "someone-else").Sign(Identity{UserID: "u"}, time.Hour)
	noSubject, _ := j.Sign(Identity{}, time.Hour)

	tests := []struct {
		name   string
		header string
		want   error
	}{
		{"no header", "", ErrNoCredentials},
		{"basic scheme", "Basic dXNlcjpwYXNz", ErrNoCredentials},
		{"empty bearer", "Bearer ", ErrNoCredentials},
		{"garbage", "Bearer not.a.jwt", ErrInvalidCredentials},
		{"expired", "Bearer " + expired, ErrInvalidCredentials},
		{"wrong key", "Bearer " + otherKey, ErrInvalidCredentials},
		{"wrong issuer", "Bearer " + otherIssuer, ErrInvalidCredentials},
		{"missing subject", "Bearer " + noSubject, ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if _, err := j.Resolve(r); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestJWTResolver_AnyIssuerWhenUnset(t *testing.T) {
	token, _ := NewJWTResolver(testSecret, "whoever").Sign(Identity{UserID: "u"}, time.Hour)
	if _, err := NewJWTResolver(testSecret, "").Validate(token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
