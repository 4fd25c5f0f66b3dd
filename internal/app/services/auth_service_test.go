package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayaurl/Skillsculpt2/internal/app/models"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/apperrors"
	"github.com/tanmayaurl/Skillsculpt2/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (AuthService, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test_secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "skillsculpt-test",
	})
	svc, err := NewAuthService(jwtService, zerolog.Nop())
	require.NoError(t, err)
	return svc, jwtService
}

func TestLogin(t *testing.T) {
	svc, jwtService := newTestAuthService(t)

	t.Run("valid credentials return token and role", func(t *testing.T) {
		resp, err := svc.Login("student@example.com", "student")
		require.NoError(t, err)
		assert.Equal(t, models.RoleStudent, resp.Role)

		claims, err := jwtService.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.Subject)
		assert.Equal(t, models.RoleStudent, claims.Role)
	})

	t.Run("each demo account logs in with its own role", func(t *testing.T) {
		cases := map[string]struct {
			email, password, role string
		}{
			"employer":   {"employer@example.com", "employer", models.RoleEmployer},
			"university": {"uniadmin@example.com", "university", models.RoleUniversity},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				resp, err := svc.Login(tc.email, tc.password)
				require.NoError(t, err)
				assert.Equal(t, tc.role, resp.Role)
			})
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("student@example.com", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "student")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
