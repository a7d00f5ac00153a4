package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/liverdesk/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (string, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO users (id, email, password_hash, created_at)
        VALUES (?, ?, ?, ?)
    `, id, email, passwordHash, formatTime(time.Now()))
	if err != nil {
		if isUniqueErr(err) {
			return "", fmt.Errorf("failed to create user '%s': %w", email, ErrUserExists)
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user '%s': %w", email, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query user '%s': %w", email, err)
	}
	return user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE id = ?", id)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query user with ID %s: %w", id, err)
	}
	return user, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (s *Store) CreateSession(ctx context.Context, session *model.Session) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO sessions (token, user_id, created_at, expires_at)
        VALUES (?, ?, ?, ?)
    `, session.Token, session.UserID, formatTime(session.CreatedAt), formatTime(session.ExpiresAt))
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("failed to create session: %w", ErrConstraintViolation)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, token string) (*model.Session, error) {
	var createdAt, expiresAt string
	session := &model.Session{}

	err := s.db.QueryRowContext(ctx,
		"SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?", token,
	).Scan(&session.Token, &session.UserID, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	if session.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if session.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return expectAffected(res, "session", "current")
}

func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= ?", formatTime(now))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}

func scanUser(row rowScanner) (*model.User, error) {
	user := &model.User{}
	var createdAt string

	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if user.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return user, nil
}
