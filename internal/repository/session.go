package repository

import (
	"context"
	"database/sql"
	"errors"

	"mywallet/internal/model"
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	GetByTokenAndUser(ctx context.Context, token string, userID int64) (*model.Session, error)
	DeleteByToken(ctx context.Context, token string) error
}

type sessionRepository struct {
	db *Database
}

func NewSessionRepository(db *Database) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	query := `INSERT INTO sessions (user_id, token) VALUES ($1, $2) RETURNING id, created_at`
	return r.db.db.QueryRowContext(ctx, query, session.UserID, session.Token).
		Scan(&session.ID, &session.CreatedAt)
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT id, user_id, token, created_at FROM sessions WHERE token = $1`
	err := r.db.db.QueryRowContext(ctx, query, token).
		Scan(&session.ID, &session.UserID, &session.Token, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) GetByTokenAndUser(ctx context.Context, token string, userID int64) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT id, user_id, token, created_at FROM sessions WHERE token = $1 AND user_id = $2`
	err := r.db.db.QueryRowContext(ctx, query, token, userID).
		Scan(&session.ID, &session.UserID, &session.Token, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return session, nil
}

// DeleteByToken removes every session bound to the token. Deleting a token
// that has no sessions is not an error.
func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	_, err := r.db.db.ExecContext(ctx, query, token)
	return err
}
