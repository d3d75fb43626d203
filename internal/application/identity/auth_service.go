package identity

import (
	"context"
	"errors"
	"regexp"

	"go.uber.org/zap"

	"github.com/acme/dashboard-gateway/internal/domain/identity"
	"github.com/acme/dashboard-gateway/internal/domain/shared"
)

// minPasswordLength is the minimum accepted password length; anything
// shorter is treated as plain invalid credentials
const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthStatus is the verdict of a credential check
type AuthStatus int

const (
	// AuthNotFound means no user is registered under the supplied email
	AuthNotFound AuthStatus = iota
	// AuthMismatch means the credentials were malformed or the password
	// did not match the stored hash
	AuthMismatch
	// AuthAuthenticated means the credentials matched
	AuthAuthenticated
)

// AuthResult is the tagged outcome of an authentication attempt. Only
// Authenticated carries a user. "No match" is an absence, not an error;
// truly unexpected failures are returned as a separate error value.
type AuthResult struct {
	Status AuthStatus
	User   *identity.User
}

// Authenticated reports whether the attempt produced a principal
func (r AuthResult) Authenticated() bool {
	return r.Status == AuthAuthenticated && r.User != nil
}

// AuthService verifies credentials against the remote user store
type AuthService struct {
	users  identity.UserRepository
	logger *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.UserRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, logger: logger}
}

// Authenticate checks an email/password pair. Malformed input and a wrong
// password are both reported as a mismatch so an attacker learns nothing
// from the distinction; an unknown email is reported as not found. Any
// unexpected failure, like the user store being unreachable, propagates
// unmodified.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (AuthResult, error) {
	if !emailPattern.MatchString(email) || len(password) < minPasswordLength {
		s.logger.Warn("Invalid credentials", zap.String("email", email))
		return AuthResult{Status: AuthMismatch}, nil
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email", zap.String("email", email))
			return AuthResult{Status: AuthNotFound}, nil
		}
		s.logger.Error("Failed to fetch user", zap.Error(err), zap.String("email", email))
		return AuthResult{}, err
	}

	if !user.VerifyPassword(password) {
		s.logger.Warn("Invalid credentials", zap.String("email", email))
		return AuthResult{Status: AuthMismatch}, nil
	}

	s.logger.Info("User authenticated", zap.String("user_id", user.ID))
	return AuthResult{Status: AuthAuthenticated, User: user}, nil
}
