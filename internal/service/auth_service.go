package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/koperasindo/koperasi-api/internal/models"
	"github.com/koperasindo/koperasi-api/internal/repository"
	"github.com/koperasindo/koperasi-api/internal/utils"
)

// AuthService authenticates console accounts and issues session tokens.
type AuthService struct {
	users *repository.UserRepository
}

// NewAuthService constructs an AuthService.
func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies credentials and returns a signed token plus the account.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	log.Debug().Str("email", email).Msg("login attempt")

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		log.Warn().Str("email", email).Msg("login for unknown email")
		return "", models.User{}, utils.Unauthorizedf("Email atau password salah")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("password verification failed")
		return "", models.User{}, utils.Unauthorizedf("Email atau password salah")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", models.User{}, err
	}

	log.Info().Str("email", email).Str("role", user.Role).Msg("login successful")
	return token, user, nil
}

// CreateUser hashes the password and stores the account. The repository
// validates the remaining fields and email uniqueness.
func (s *AuthService) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	if in.Password == "" {
		return models.User{}, utils.Invalidf("Password harus diisi.")
	}
	if len(in.Password) < 8 {
		return models.User{}, utils.Invalidf("Password minimal 8 karakter")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	return s.users.Create(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Role:         role,
		PasswordHash: string(hash),
	})
}
