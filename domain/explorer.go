package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20

	passwordHashCost = 12
)

var (
	usernameRegex = regexp.MustCompile(usernamePattern)

	ErrUsernameTooShort  = errors.New("username too short")
	ErrUsernameTooLong   = errors.New("username too long")
	ErrUsernameFormat    = errors.New("invalid username format")
	ErrWeakPassword      = errors.New("weak password")
	ErrExplorerNotFound  = errors.New("explorer not found")
	ErrUsernameConflict  = errors.New("username conflict")
	ErrInvalidCredential = errors.New("invalid username or password")
)

// Explorer is an account that submits hunts.
type Explorer struct {
	ID           uuid.UUID `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	BestReward   *int      `bson:"bestReward,omitempty" json:"best_reward,omitempty"` // nil until the first hunt
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}

// ExplorerConfig holds the parameters for creating an Explorer.
type ExplorerConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewExplorer validates the configuration and creates an Explorer with a hashed password.
func NewExplorer(config ExplorerConfig) (*Explorer, error) {
	if err := validateUsername(config.Username); err != nil {
		return nil, err
	}

	if err := validatePassword(config.PlainPassword); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(config.PlainPassword)
	if err != nil {
		return nil, err
	}

	return &Explorer{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// VerifyPassword verifies if the given password matches the stored hash.
func (e *Explorer) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(password))
	return err == nil
}

// RecordReward keeps reward if it beats the best so far and reports whether it did.
func (e *Explorer) RecordReward(reward int) bool {
	if e.BestReward != nil && *e.BestReward >= reward {
		return false
	}
	e.BestReward = &reward
	return true
}

// validateUsername validates the username.
func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(username) {
		return ErrUsernameFormat
	}
	return nil
}

// validatePassword checks the strength of the password.
func validatePassword(password string) error {
	result := zxcvbn.PasswordStrength(password, nil)
	if result.Score < minPasswordStrengthScore {
		return ErrWeakPassword
	}
	return nil
}

// hashPassword generates a bcrypt hash for the given password.
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	return string(bytes), err
}
