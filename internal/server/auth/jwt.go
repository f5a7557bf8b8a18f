// Package auth holds the credential primitives of the blog server: bcrypt
// password hashing, stateless JWT identity tokens and the bearer-token gate
// that turns an Authorization header into a user id.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the user id the token
// was issued for.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// GenerateToken signs an HS256 token for userID. A non-positive validity
// produces a token without an exp claim, i.e. one that never expires.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration, now time.Time) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrEmptySigningKey
	}

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
		UserID: userID,
	}
	if validityDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(validityDuration))
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken checks the signature (HS256 only) and, when present,
// the expiry of tokenString and returns the embedded user id. Every failure
// wraps common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}

// TokenService issues and verifies identity tokens with a process-wide
// secret fixed at startup.
type TokenService struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenService returns a TokenService. validity <= 0 disables expiry.
func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	key := make([]byte, len(secret))
	copy(key, secret)
	return &TokenService{secret: key, validity: validity, now: time.Now}
}

// Issue returns a signed token binding userID.
func (s *TokenService) Issue(userID string) (string, error) {
	return GenerateToken(userID, s.secret, s.validity, s.now())
}

// Verify returns the user id bound to token. It is a purely cryptographic
// check; whether the user still exists is not consulted.
func (s *TokenService) Verify(token string) (string, error) {
	return GetUserIDFromToken(token, s.secret)
}
