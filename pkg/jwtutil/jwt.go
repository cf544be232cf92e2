package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/maemanahmaemanah39-collab/venaules/pkg/config"
)

// UserClaims represents the JWT claims for an authenticated back-office user.
// Role and Permissions ride along so the permission gate can run without a
// database round-trip.
type UserClaims struct {
	Email       string   `json:"email"`
	UserID      string   `json:"user_id"`
	SessionID   string   `json:"session_id"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// JWTUtil is a utility for JWT token operations
type JWTUtil struct {
	config *config.JWTConfig
}

// NewJWTUtil creates a new JWT utility with the given configuration
func NewJWTUtil(cfg *config.JWTConfig) *JWTUtil {
	return &JWTUtil{
		config: cfg,
	}
}

// GenerateToken creates a JWT token for the given user and session
func (j *JWTUtil) GenerateToken(email, userID, sessionID, role string, permissions []string) (string, error) {
	if j.config == nil {
		return "", errors.New("JWT configuration not provided")
	}

	signingKey := j.config.SigningKey
	expirationHours := j.config.ExpirationHours

	claims := UserClaims{
		Email:       email,
		UserID:      userID,
		SessionID:   sessionID,
		Role:        role,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(signingKey))
}

// ValidateToken validates and parses the JWT token
func (j *JWTUtil) ValidateToken(tokenString string) (*UserClaims, error) {
	if j.config == nil {
		return nil, errors.New("JWT configuration not provided")
	}

	signingKey := j.config.SigningKey

	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(signingKey), nil
		},
	)

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
