package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *JWTService {
	return NewJWTService("test-signing-key", "parcours-test", "parcours-api")
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()
	token, err := svc.GenerateAccessToken("00345678", "en", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "00345678", claims.Subject)
	assert.Equal(t, "en", claims.Language)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	t.Run("adapter exposes the caller identity", func(t *testing.T) {
		mw, err := NewJWTServiceAdapter(svc).ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "00345678", mw.Matricule)
		assert.Equal(t, "en", mw.Language)
		assert.Equal(t, claims.ID, mw.TokenID)
	})
}

func TestValidateTokenRejects(t *testing.T) {
	svc := newService()

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateAccessToken("00345678", "fr-be", -time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("other audience", func(t *testing.T) {
		token, err := NewJWTService("test-signing-key", "parcours-test", "elsewhere").
			GenerateAccessToken("00345678", "fr-be", time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("other key", func(t *testing.T) {
		token, err := NewJWTService("another-key", "parcours-test", "parcours-api").
			GenerateAccessToken("00345678", "fr-be", time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("no subject", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "parcours-test",
			Audience:  []string{"parcours-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}})
		token, err := raw.SignedString([]byte("test-signing-key"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}
