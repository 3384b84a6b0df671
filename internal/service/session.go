package service

import (
	"context"
	"time"

	"github.com/steelcraft/catalog-server/internal/audit"
	"github.com/steelcraft/catalog-server/internal/config"
	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/repository"
	"github.com/steelcraft/catalog-server/internal/util"
)

// AdminSessionStore issues, validates, and revokes admin bearer tokens with
// absolute expiry. Get is the sole authorization check: expired rows are
// evicted on the first read past their deadline and reported as absent, so no
// other code ever inspects ExpiresAt.
type AdminSessionStore struct {
	repo repository.AdminSessionRepository
	now  func() time.Time
}

func NewAdminSessionStore(repo repository.AdminSessionRepository) *AdminSessionStore {
	return &AdminSessionStore{
		repo: repo,
		now:  time.Now,
	}
}

// Create issues a new session valid for the fixed 24-hour window.
func (s *AdminSessionStore) Create(ctx context.Context) (*model.AdminSession, error) {
	token, err := util.GenerateToken()
	if err != nil {
		return nil, err
	}

	session, err := s.repo.Create(ctx, model.CreateAdminSessionParams{
		SessionID: token,
		ExpiresAt: s.now().Add(config.AdminSessionTTL),
	})
	if err != nil {
		return nil, err
	}

	audit.Log(audit.Event{Type: audit.EventSessionCreate})
	return session, nil
}

// Get returns the live session for a token, or nil when the token is unknown
// or expired. An expired row is deleted as a side effect before reporting
// absence, so a token can never authorize a request twice past its deadline.
func (s *AdminSessionStore) Get(ctx context.Context, token string) (*model.AdminSession, error) {
	session, err := s.repo.FindBySessionID(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	if !s.now().Before(session.ExpiresAt) {
		if err := s.repo.DeleteBySessionID(ctx, token); err != nil {
			return nil, err
		}
		audit.Log(audit.Event{Type: audit.EventSessionExpire})
		return nil, nil
	}

	return session, nil
}

// Delete revokes a token. Deleting an absent token is not an error.
func (s *AdminSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.repo.DeleteBySessionID(ctx, token); err != nil {
		return err
	}
	audit.Log(audit.Event{Type: audit.EventSessionDelete})
	return nil
}
