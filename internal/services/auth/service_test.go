package auth

import (
	"context"
	"testing"
	"time"

	"payfee/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testService(t *testing.T) *service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(Config{
		Username:     "admin",
		PasswordHash: string(hash),
		Secret:       "test-secret",
		TokenTTL:     time.Hour,
	}).(*service)
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid credentials", username: "admin", password: "s3cret!"},
		{name: "wrong password", username: "admin", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "wrong username", username: "root", password: "s3cret!", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testService(t)

			token, claims, err := s.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, models.RoleAdmin, claims.Role)
			assert.True(t, claims.HasPermission(models.PermissionFeeSettingsWrite))
		})
	}
}

func TestService_LoginNotConfigured(t *testing.T) {
	s := NewService(Config{Username: "admin", Secret: "x"})
	_, _, err := s.Login(context.Background(), "admin", "anything")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_ParseToken(t *testing.T) {
	s := testService(t)
	token, _, err := s.Login(context.Background(), "admin", "s3cret!")
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		claims, err := s.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, models.RoleAdmin, claims.Role)
	})

	t.Run("expired", func(t *testing.T) {
		expired := testService(t)
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := expired.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewService(Config{Secret: "different"})
		_, err := other.ParseToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.AdminClaims{Role: models.RoleAdmin}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = s.ParseToken(unsigned)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.Secret)
	assert.Panics(t, func() { NewService(cfg) })
}

func TestLoadConfig_UsesSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")

	cfg := LoadConfig()

	assert.Equal(t, "from-env", cfg.Secret)
	assert.NotPanics(t, func() { NewService(cfg) })
}
