package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", 8*time.Hour)

	token, err := svc.Generate("user-123", "doctor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "doctor", claims.Role)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.Generate("user-123", "patient")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTamperedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.Generate("user-123", "patient")
	require.NoError(t, err)

	for _, i := range []int{10, len(token) / 2, len(token) - 2} {
		tampered := []byte(token)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}

		_, err = svc.Validate(string(tampered))
		assert.ErrorIs(t, err, ErrInvalidToken, "byte %d", i)
	}
}

func TestValidateWrongKey(t *testing.T) {
	issuer := NewJWTService("key-one", time.Hour)
	verifier := NewJWTService("key-two", time.Hour)

	token, err := issuer.Generate("user-123", "admin")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateMissingSubject(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "patient",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	for _, tok := range []string{"", "not.a.jwt", "aaaa"} {
		_, err := svc.Validate(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
