package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"maritime-service/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the account identity inside the signed token
type UserClaims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// JWTUtil issues and validates HS256 bearer tokens. Tokens are only accepted
// when signature, issuer, audience and lifetime all check out against the
// same configuration used at issue time.
type JWTUtil struct {
	cfg *config.JWTConfig
}

// New creates a JWT utility with the given configuration
func New(cfg *config.JWTConfig) *JWTUtil {
	return &JWTUtil{cfg: cfg}
}

// GenerateToken creates a signed token for the given account
func (j *JWTUtil) GenerateToken(username, email string) (string, error) {
	if j.cfg == nil {
		return "", errors.New("JWT configuration not provided")
	}

	now := time.Now()
	claims := &UserClaims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.cfg.Issuer,
			Audience:  jwt.ClaimStrings{j.cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(j.cfg.ExpiresMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.cfg.SigningKey))
}

// ValidateToken validates the token and returns the claims
func (j *JWTUtil) ValidateToken(tokenString string) (*UserClaims, error) {
	if j.cfg == nil {
		return nil, errors.New("JWT configuration not provided")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.cfg.SigningKey), nil
		},
		jwt.WithIssuer(j.cfg.Issuer),
		jwt.WithAudience(j.cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
