// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues identity
// tokens.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/logging"
	"github.com/dmitrijs2005/gophblog/internal/server/auth"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/repositories/users"
)

// AuthResult is returned by a successful registration or login.
type AuthResult struct {
	Token string
	User  *models.User
}

// UserService provides authentication-related operations:
// - Register: create a user and issue a token
// - Login: verify credentials and issue a token
type UserService struct {
	users  users.Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
	logger logging.Logger

	// digest checked when the email is unknown, so both failure paths pay
	// for one bcrypt comparison
	dummyDigest string
}

// NewUserService constructs a UserService.
func NewUserService(repo users.Repository, hasher *auth.PasswordHasher, tokens *auth.TokenService, logger logging.Logger) (*UserService, error) {
	dummy, err := hasher.Hash("unused-password")
	if err != nil {
		return nil, fmt.Errorf("init user service: %w", err)
	}
	return &UserService{
		users:       repo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger.With("module", "users"),
		dummyDigest: dummy,
	}, nil
}

// Register creates a user and returns a token for it. Every failure is
// reported as common.ErrUserExists; the real cause is only logged.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	res, err := s.register(ctx, username, email, password)
	if err != nil {
		s.logger.Warn(ctx, "registration failed", "email", email, "error", err.Error())
		return nil, common.ErrUserExists
	}
	s.logger.Info(ctx, "user registered", "user_id", res.User.ID)
	return res, nil
}

func (s *UserService) register(ctx context.Context, username, email, password string) (*AuthResult, error) {
	if password == "" {
		return nil, errors.New("empty password")
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &models.User{UserName: username, Email: email, PasswordHash: digest})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login checks email and password and returns a fresh token. Unknown email
// and wrong password both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyDigest)
			s.logger.Warn(ctx, "login rejected", "reason", "unknown email")
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "login lookup failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn(ctx, "login rejected", "reason", "password mismatch", "user_id", user.ID)
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, User: user}, nil
}
