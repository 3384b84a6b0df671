package model

import (
	"time"
)

// AdminSession is a bearer-token session row. SessionID is the opaque token
// presented by the client; it is unique and never reissued in practice.
type AdminSession struct {
	ID        int       `db:"id" json:"id"`
	SessionID string    `db:"session_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	ExpiresAt time.Time `db:"expires_at" json:"expiresAt"`
}

type CreateAdminSessionParams struct {
	SessionID string
	ExpiresAt time.Time
}
