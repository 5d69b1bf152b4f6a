package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/KarimF430/Assad-motors-sub000/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the lifetime of admin tokens
const TokenTTL = 12 * time.Hour

// Login authenticates the catalog admin and returns a JWT
func (s *Service) Login(creds models.Credentials) (models.Token, error) {
	if s.config.AdminPasswordHash == "" {
		return models.Token{}, fmt.Errorf("%w: admin login disabled", ErrUnauthorized)
	}
	if !strings.EqualFold(strings.TrimSpace(creds.Email), s.config.AdminEmail) {
		return models.Token{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(creds.Password)); err != nil {
		return models.Token{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	// Generate JWT
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   s.config.AdminEmail,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return models.Token{}, fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("Admin logged in: %s", s.config.AdminEmail)
	return models.Token{AccessToken: tokenString, ExpiresIn: int64(TokenTTL.Seconds())}, nil
}
