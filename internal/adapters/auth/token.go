package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventroster/internal/domain"
)

// ErrInvalidToken is returned by Verify for malformed, expired or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

type jwtClaims struct {
	jwt.RegisteredClaims
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

type jwtIssuer struct {
	secret []byte
	expiry time.Duration
}

// TokenIssuer signs viewer tokens.
type TokenIssuer interface {
	Issue(viewer domain.Viewer, expiry time.Duration) (string, error)
}

// NewJWTIssuer returns a TokenIssuer that signs JWTs with HS256 using the given secret.
// defaultExpiry is used when Issue is called with a non-positive expiry.
func NewJWTIssuer(secret string, defaultExpiry time.Duration) TokenIssuer {
	return &jwtIssuer{secret: []byte(secret), expiry: defaultExpiry}
}

func (i *jwtIssuer) Issue(viewer domain.Viewer, expiry time.Duration) (string, error) {
	if strings.TrimSpace(viewer.Username) == "" {
		return "", fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if expiry <= 0 {
		expiry = i.expiry
	}
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   viewer.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Email: viewer.Email,
		Roles: viewer.Roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

type jwtVerifier struct {
	secret []byte
}

// NewJWTVerifier returns a TokenVerifier for HS256 tokens signed with secret. The subject
// claim becomes the viewer's username.
func NewJWTVerifier(secret string) domain.TokenVerifier {
	return &jwtVerifier{secret: []byte(secret)}
}

func (v *jwtVerifier) Verify(token string) (domain.Viewer, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return domain.Viewer{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Viewer{}, ErrInvalidToken
	}
	return domain.Viewer{
		Username: claims.Subject,
		Email:    claims.Email,
		Roles:    claims.Roles,
	}, nil
}
