package services

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/app/models/dto"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/auth"
)

// AuthService authenticates the fixed demo accounts and mints tokens.
type AuthService interface {
	Login(email, password string) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	users      []*models.User
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// demoCredentials are the three flat-role demo accounts. There is no
// registration flow; the password hashes are built at construction.
var demoCredentials = []struct {
	id, email, password, role string
}{
	{"u1", "student@example.com", "student", models.RoleStudent},
	{"u2", "employer@example.com", "employer", models.RoleEmployer},
	{"u3", "uniadmin@example.com", "university", models.RoleUniversity},
}

// NewAuthService creates a new auth service with the demo accounts.
func NewAuthService(jwtService *auth.JWTService, logger zerolog.Logger) (AuthService, error) {
	users := make([]*models.User, 0, len(demoCredentials))
	for _, cred := range demoCredentials {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash credential for %s: %w", cred.email, err)
		}
		users = append(users, &models.User{
			ID:           cred.id,
			Email:        cred.email,
			PasswordHash: hash,
			Role:         cred.role,
		})
	}
	return &authServiceImpl{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}, nil
}

// Login verifies the credentials and returns a token plus the account role.
func (s *authServiceImpl) Login(email, password string) (*dto.LoginResponse, error) {
	for _, user := range s.users {
		if user.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
			return nil, apperrors.ErrInvalidCredentials
		}

		token, err := s.jwtService.GenerateToken(user.ID, user.Role)
		if err != nil {
			s.logger.Error().Err(err).Str("email", email).Msg("Failed to mint token")
			return nil, err
		}
		return &dto.LoginResponse{Token: token, Role: user.Role}, nil
	}
	return nil, apperrors.ErrInvalidCredentials
}
