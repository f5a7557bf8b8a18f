package auth

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/gophblog/internal/common"
)

// TokenVerifier is what the gateway needs from the token service.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate turns the raw Authorization header value into a user id.
//
//   - empty header          -> common.ErrMissingToken
//   - bad or foreign token  -> common.ErrInvalidToken
//
// The "Bearer " prefix is optional. No storage is consulted.
func Authenticate(header string, v TokenVerifier) (string, error) {
	if header == "" {
		return "", common.ErrMissingToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
	if token == "" {
		return "", common.ErrInvalidToken
	}

	userID, err := v.Verify(token)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) {
			return "", err
		}
		return "", errors.Join(common.ErrInvalidToken, err)
	}
	return userID, nil
}
