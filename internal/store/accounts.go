package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"summerhome/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// AccountStore persists user accounts in a sqlite file. The file is the
// durable form of the email -> user mapping; rows are written on signup
// and profile updates, never hard-deleted.
type AccountStore struct {
	db *sqlx.DB
}

// NewAccountStore opens (creating if needed) the account database
func NewAccountStore(path string) (*AccountStore, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open accounts database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure accounts database: %w", err)
	}

	s := &AccountStore{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *AccountStore) Close() error {
	return s.db.Close()
}

func (s *AccountStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS users (
  id            TEXT PRIMARY KEY,
  name          TEXT NOT NULL,
  email         TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at    TIMESTAMP NOT NULL,
  updated_at    TIMESTAMP NOT NULL
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}
	return nil
}

// Create inserts a new user. The caller is responsible for normalizing the
// email and hashing the password first.
func (s *AccountStore) Create(ctx context.Context, user *model.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.db.NamedExecContext(ctx, `
INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
VALUES (:id, :name, :email, :password_hash, :created_at, :updated_at)
`, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByEmail fetches a user by normalized email. Returns (nil, nil) when
// no such account exists.
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = ?`, model.NormalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// GetByID fetches a user by identifier. Returns (nil, nil) when not found.
func (s *AccountStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// Update rewrites a user's mutable fields (name, password hash)
func (s *AccountStore) Update(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now().UTC()

	res, err := s.db.NamedExecContext(ctx, `
UPDATE users SET name = :name, password_hash = :password_hash, updated_at = :updated_at
WHERE id = :id
`, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("user %s not found", user.ID)
	}
	return nil
}
