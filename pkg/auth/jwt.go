package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the bearer token claims. The subject is the user id; the other
// attributes mirror what the hosted identity provider puts in its ID tokens.
type Claims struct {
	Username    string `json:"username,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver verifies HS256 bearer tokens from the Authorization header.
type JWTResolver struct {
	secret []byte
	issuer string
}

// NewJWTResolver returns a resolver for tokens signed with secret. When issuer
// is non-empty the iss claim must match it.
func NewJWTResolver(secret, issuer string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret), issuer: issuer}
}

// Resolve implements Resolver.
func (j *JWTResolver) Resolve(r *http.Request) (Identity, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return Identity{}, ErrNoCredentials
	}
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return Identity{}, ErrNoCredentials
	}
	claims, err := j.Validate(strings.TrimSpace(token))
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		UserID:      claims.Subject,
		Username:    claims.Username,
		Email:       claims.Email,
		PhoneNumber: claims.PhoneNumber,
	}, nil
}

// Validate parses and validates a token, returning its claims.
func (j *JWTResolver) Validate(token string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return j.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// Sign issues a token for id valid for ttl. Used by tests and local tooling;
// production tokens come from the identity provider.
func (j *JWTResolver) Sign(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username:    id.Username,
		Email:       id.Email,
		PhoneNumber: id.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
