package config

import "time"

// Database connection pool settings
const (
	DBMaxOpenConns    = 25
	DBMaxIdleConns    = 5
	DBConnMaxLifetime = 5 * time.Minute
)

// HTTP server timeouts
const (
	ServerRequestTimeout  = 30 * time.Second
	ServerReadTimeout     = 15 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerIdleTimeout     = 120 * time.Second
	ServerShutdownTimeout = 30 * time.Second
)

// Database ping timeout for startup checks
const DBPingTimeout = 5 * time.Second

// AdminSessionTTL is the absolute lifetime of an admin session. Expiry is
// enforced lazily on read; there is no background sweep.
const AdminSessionTTL = 24 * time.Hour

// RecentActivityLimit caps the dashboard activity feed.
const RecentActivityLimit = 5
