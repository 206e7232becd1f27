package service

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelia/internal/errors"
)

func TestSignupAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(&fakeUserRepo{})

	result, err := svc.Signup("Ana María", "ana@example.com", "hunter2hunter2", RoleGuest)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.True(t, result.User.IsNewUser)

	login, err := svc.Login("ana@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, login.User.ID)
	// The first login clears the new-user flag.
	assert.False(t, login.User.IsNewUser)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Signup("Ana", "ana@example.com", "hunter2hunter2", RoleGuest)
	require.NoError(t, err)

	_, err = svc.Signup("Other Ana", "ana@example.com", "different-pass", RoleHost)
	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))
}

func TestSignupValidation(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Signup("", "ana@example.com", "hunter2hunter2", RoleGuest)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))

	_, err = svc.Signup("Ana", "ana@example.com", "hunter2hunter2", "admin")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errors.StatusCode(err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Signup("Ana", "ana@example.com", "hunter2hunter2", RoleGuest)
	require.NoError(t, err)

	_, err = svc.Login("ana@example.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, errors.StatusCode(err))

	_, err = svc.Login("nobody@example.com", "hunter2hunter2")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, errors.StatusCode(err))
}

func TestIssueTokenClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := NewAuthService(&fakeUserRepo{})

	result, err := svc.Signup("Ana", "ana@example.com", "hunter2hunter2", RoleHost)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(result.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, float64(result.User.ID), claims["user_id"])
	assert.Equal(t, RoleHost, claims["role"])
	assert.NotNil(t, claims["exp"])
}
