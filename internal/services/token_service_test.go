package services_test

import (
	"testing"
	"time"

	"social-media/internal/domain/account"
	"social-media/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClaims(t *testing.T, token, secret string) (*services.AccessClaims, error) {
	t.Helper()
	claims := &services.AccessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	return claims, err
}

func TestTokenService_Issue(t *testing.T) {
	svc := services.NewTokenService("secret", time.Hour)

	token, expiresIn, err := svc.Issue(account.Account{ID: 12, Username: "bob", Password: "pass"})
	require.NoError(t, err)
	assert.EqualValues(t, 3600, expiresIn)

	claims, err := parseClaims(t, token, "secret")
	require.NoError(t, err)
	assert.Equal(t, 12, claims.AccountID)
	assert.Equal(t, "bob", claims.Username)
	assert.Equal(t, "12", claims.Subject)
}

func TestTokenService_SignsWithOwnSecretAndTTL(t *testing.T) {
	token, _, err := services.NewTokenService("other-secret", time.Hour).Issue(account.Account{ID: 1, Username: "bob"})
	require.NoError(t, err)
	_, err = parseClaims(t, token, "secret")
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)

	token, _, err = services.NewTokenService("secret", -time.Minute).Issue(account.Account{ID: 1, Username: "bob"})
	require.NoError(t, err)
	_, err = parseClaims(t, token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
