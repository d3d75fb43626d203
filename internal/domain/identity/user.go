package identity

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// User is a user record from the remote user store. It is read-only from
// the gateway's perspective and used only for credential verification.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
}

// VerifyPassword compares a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UserRepository is the contract of the remote user store
type UserRepository interface {
	// FindByEmail returns the user registered under the given email address,
	// or shared.ErrNotFound if no such user exists
	FindByEmail(ctx context.Context, email string) (*User, error)
}
