package auth

import (
	"testing"
	"time"

	"snackbasket/config"
	"snackbasket/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, []string{"admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTService_RefreshTokenIsNotAccess(t *testing.T) {
	svc := newTestJWTService(t)

	_, refresh, err := svc.GenerateTokens(uuid.New(), []string{"employee"})
	require.NoError(t, err)

	// Signed with the refresh secret, so the signature check fails first.
	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_ValidateRefreshToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	access, refresh, err := svc.GenerateTokens(userID, []string{"admin"})
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.Roles)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTService_RefreshTypeChecked(t *testing.T) {
	svc := newTestJWTService(t)

	signed, err := svc.sign(uuid.New(), nil, service.TokenTypeAccess, time.Hour, svc.refreshSecret)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(signed)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestJWTService_RefreshExpired(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	_, refresh, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(defaultRefreshTTL + time.Minute) }
	_, err = svc.ValidateRefreshToken(refresh)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t)
	issued := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	access, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(defaultAccessTTL + time.Minute) }
	_, err = svc.ValidateAccessToken(access)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestJWTService(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(svc.accessSecret)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func TestJWTService_WrongTypeWithAccessSecret(t *testing.T) {
	svc := newTestJWTService(t)

	signed, err := svc.sign(uuid.New(), nil, service.TokenTypeRefresh, time.Hour, svc.accessSecret)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestNewJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateAccessToken("not-a-token")
	assert.Error(t, err)
}
