package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

func testAuth(t *testing.T) *AuthService {
	t.Helper()
	utils.SetJWTSecret("test-secret")

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := repository.NewUserRepository(repository.Options{}, []models.User{
		{ID: 1, Name: "Budi Santoso", Email: "budi@example.com", PhoneNumber: "081234567890", Role: models.RoleUser, PasswordHash: string(hash)},
	})
	return NewAuthService(users)
}

func TestLoginIssuesValidToken(t *testing.T) {
	s := testAuth(t)

	token, user, err := s.Login(context.Background(), "budi@example.com", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "budi@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	s := testAuth(t)

	// Unknown email and wrong password yield the same message.
	_, _, err := s.Login(context.Background(), "tidakada@example.com", "rahasia123")
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
	assert.EqualError(t, err, "Email atau password salah")

	_, _, err = s.Login(context.Background(), "budi@example.com", "salah123")
	assert.ErrorIs(t, err, utils.ErrUnauthorized)
	assert.EqualError(t, err, "Email atau password salah")
}

func TestCreateUserPasswordRules(t *testing.T) {
	s := testAuth(t)

	_, err := s.CreateUser(context.Background(), models.UserInput{
		Name: "Citra", Email: "citra@example.com", PhoneNumber: "081234567891",
	})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = s.CreateUser(context.Background(), models.UserInput{
		Name: "Citra", Email: "citra@example.com", PhoneNumber: "081234567891", Password: "pendek",
	})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCreateUserHashesPasswordAndDefaultsRole(t *testing.T) {
	s := testAuth(t)

	u, err := s.CreateUser(context.Background(), models.UserInput{
		Name: "Citra Lestari", Email: "citra@example.com", PhoneNumber: "081234567891", Password: "rahasia456",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.NotEqual(t, "rahasia456", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("rahasia456")))
}
