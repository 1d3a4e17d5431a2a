package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventroster/internal/domain"
)

func TestJWTIssuer_Issue(t *testing.T) {
	secret := "test-secret"
	expiry := 24 * time.Hour
	issuer := NewJWTIssuer(secret, expiry)

	token, err := issuer.Issue(domain.Viewer{Username: "alice", Email: "a@example.com", Roles: []string{"organizer"}}, expiry)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, []string{"organizer"}, claims.Roles)
}

func TestJWTIssuer_RequiresUsername(t *testing.T) {
	_, err := NewJWTIssuer("s", time.Hour).Issue(domain.Viewer{Username: "  "}, 0)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJWTVerifier_Verify(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)
	verifier := NewJWTVerifier("secret")

	valid, err := issuer.Issue(domain.Viewer{Username: "alice", Email: "a@example.com"}, 0)
	require.NoError(t, err)
	otherKey, err := NewJWTIssuer("other", time.Hour).Issue(domain.Viewer{Username: "alice"}, 0)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		viewer, err := verifier.Verify(valid)
		require.NoError(t, err)
		assert.Equal(t, domain.Viewer{Username: "alice", Email: "a@example.com"}, viewer)
	})

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong key", otherKey},
		{"alg none", unsigned},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	t.Run("expired", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}})
		s, err := tok.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = verifier.Verify(s)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
