package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"summerhome/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcrypt cost factor
	bcryptCost = 12

	minPasswordLength = 8

	// Symbols accepted for the password policy's symbol requirement
	passwordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?/|~"
)

// Sentinel errors handlers must tell apart: a duplicate signup is not the
// same failure as a weak password or a bad login.
var (
	ErrEmailExists        = errors.New("an account with this email already exists")
	ErrWeakPassword       = errors.New("password does not meet requirements")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the account persistence the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// AuthService handles signup, login and profile changes
type AuthService struct {
	users UserStore
}

// NewAuthService creates a new auth service over the given store
func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// CreateUser registers a new account. The password is validated before
// anything is hashed or stored; a rejection leaves no partial state.
func (s *AuthService) CreateUser(ctx context.Context, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}

	normalized := model.NormalizeEmail(email)
	if !strings.Contains(normalized, "@") {
		return nil, fmt.Errorf("invalid email address")
	}

	if err := ValidatePassword(password); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        normalized,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks credentials against the stored hash. The error never
// reveals whether the email or the password was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile changes an account's name and/or password. Password changes
// require the current password and re-run the full policy check. The user
// ID and email are immutable.
func (s *AuthService) UpdateProfile(ctx context.Context, email, name, currentPassword, newPassword string) (*model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}

	if newPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
			return nil, ErrInvalidCredentials
		}
		if err := ValidatePassword(newPassword); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ValidatePassword enforces the account password policy. Each failure
// carries its own message so the UI can tell the user what to fix; all
// wrap ErrWeakPassword so callers can classify the rejection.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrWeakPassword)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, c):
			hasSymbol = true
		}
	}

	switch {
	case !hasUpper:
		return fmt.Errorf("%w: must contain at least one uppercase letter", ErrWeakPassword)
	case !hasLower:
		return fmt.Errorf("%w: must contain at least one lowercase letter", ErrWeakPassword)
	case !hasDigit:
		return fmt.Errorf("%w: must contain at least one number", ErrWeakPassword)
	case !hasSymbol:
		return fmt.Errorf("%w: must contain at least one symbol", ErrWeakPassword)
	}
	return nil
}
