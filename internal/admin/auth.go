// Package admin implements the demo admin portal: credential check, login
// throttling, session tokens and the static operations feed.
package admin

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Demo credentials used when none are configured.
const (
	DefaultUsername = "admin"
	DefaultPassword = "password"
)

var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrTooManyAttempts is returned when a username exceeds its login budget.
	ErrTooManyAttempts = errors.New("too many login attempts")
)

// Credentials configures an Authenticator. PasswordHash takes precedence
// over Password.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
	// Cost is the bcrypt cost used to hash Password. Zero means
	// bcrypt.DefaultCost.
	Cost int
}

// Authenticator checks a single demo account.
type Authenticator struct {
	username string
	hash     []byte
	limiter  *LimiterStore
}

// NewAuthenticator prepares an Authenticator. A nil limiter disables
// throttling.
func NewAuthenticator(c Credentials, limiter *LimiterStore) (*Authenticator, error) {
	if c.Username == "" {
		c.Username = DefaultUsername
	}

	hash := []byte(c.PasswordHash)
	if len(hash) == 0 {
		if c.Password == "" {
			c.Password = DefaultPassword
		}
		var err error
		hash, err = HashPassword(c.Password, c.Cost)
		if err != nil {
			return nil, fmt.Errorf("hashing admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}

	return &Authenticator{username: c.Username, hash: hash, limiter: limiter}, nil
}

// Username returns the configured account name.
func (a *Authenticator) Username() string { return a.username }

// Login checks the supplied credentials.
func (a *Authenticator) Login(username, password string) error {
	if a.limiter != nil && !a.limiter.Allow(username) {
		return ErrTooManyAttempts
	}
	if username != a.username {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns a bcrypt hash for password. A cost of zero uses
// bcrypt.DefaultCost.
func HashPassword(password string, cost int) ([]byte, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword([]byte(password), cost)
}
