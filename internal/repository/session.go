package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/steelcraft/catalog-server/internal/model"
)

// AdminSessionRepository is raw row access keyed by session token. Expiry
// policy lives in the session service, not here; FindBySessionID returns
// expired rows so the service can evict them.
type AdminSessionRepository interface {
	Create(ctx context.Context, params model.CreateAdminSessionParams) (*model.AdminSession, error)
	FindBySessionID(ctx context.Context, sessionID string) (*model.AdminSession, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type adminSessionRepo struct {
	db *sqlx.DB
}

func NewAdminSessionRepository(db *sqlx.DB) AdminSessionRepository {
	return &adminSessionRepo{db: db}
}

func (r *adminSessionRepo) Create(ctx context.Context, params model.CreateAdminSessionParams) (*model.AdminSession, error) {
	var session model.AdminSession
	err := r.db.GetContext(ctx, &session, `
		INSERT INTO admin_sessions (session_id, expires_at)
		VALUES ($1, $2)
		RETURNING *
	`, params.SessionID, params.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *adminSessionRepo) FindBySessionID(ctx context.Context, sessionID string) (*model.AdminSession, error) {
	var session model.AdminSession
	err := r.db.GetContext(ctx, &session, `
		SELECT * FROM admin_sessions WHERE session_id = $1
	`, sessionID)
	return HandleNotFound(&session, err)
}

func (r *adminSessionRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE session_id = $1`, sessionID)
	return err
}
