package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	password := "mySecret123"

	hash, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	t.Run("Match", func(t *testing.T) {
		assert.True(t, CheckPasswordHash(password, hash))
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.False(t, CheckPasswordHash("wrongPassword", hash))
	})

	t.Run("HashesDiffer", func(t *testing.T) {
		hash2, err := HashPassword(password)
		require.NoError(t, err)
		assert.NotEqual(t, hash, hash2)
	})
}

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	token, err := GenerateJWT(42, string(RoleCustomer), "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, string(RoleCustomer), claims.Role)
}

func TestParseJWT_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseJWT("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Tampered", func(t *testing.T) {
		token, err := GenerateJWT(1, string(RoleCustomer), "bob@example.com")
		require.NoError(t, err)

		_, err = ParseJWT(token + "x")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := GenerateJWT(1, string(RoleCustomer), "bob@example.com")
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "othersecret")
		_, err = ParseJWT(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := CustomClaims{
			UserID: 1,
			Role:   string(RoleCustomer),
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "bob@example.com",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte("testsecret"))
		require.NoError(t, err)

		_, err = ParseJWT(expired)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSigningMethod", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Subject: "bob@example.com",
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ParseJWT(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestGenerateJWT_NoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, string(RoleCustomer), "a@b.c")
	assert.Error(t, err)
}
