package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"payfee/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	// Login checks the admin credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, *models.AdminClaims, error)
	ParseToken(tokenString string) (*models.AdminClaims, error)
}

type service struct {
	cfg Config
	now func() time.Time
}

func NewService(cfg Config) Service {
	if cfg.Secret == "" {
		panic("jwt secret is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	return &service{cfg: cfg, now: time.Now}
}

func (s *service) Login(ctx context.Context, username, password string) (string, *models.AdminClaims, error) {
	if s.cfg.PasswordHash == "" {
		log.Warn().Msg("Admin login attempted but ADMIN_PASSWORD_HASH is not set")
		return "", nil, ErrNotConfigured
	}

	// Always run bcrypt so a wrong username costs the same as a wrong password.
	hashErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password))
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	if hashErr != nil || !userOK {
		log.Info().Str("username", username).Msg("Admin login failed")
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	claims := &models.AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
		Username:    username,
		Role:        models.RoleAdmin,
		Permissions: models.GetDefaultPermissions(models.RoleAdmin),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	log.Info().Str("username", username).Msg("Admin logged in")
	return token, claims, nil
}

func (s *service) ParseToken(tokenString string) (*models.AdminClaims, error) {
	claims := &models.AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Msg("Expired admin token")
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
