package config

import (
	"time"

	"github.com/sitepanel/sitepanel/internal/logger"
)

const (
	// DefaultTokenExpiry is the default lifetime of an admin session token.
	DefaultTokenExpiry = 24 * time.Hour

	// DefaultMaxFileSize is the default upload size limit (5 MB).
	DefaultMaxFileSize = 5 * 1024 * 1024

	// DefaultBodyLimit is the default request body limit (10 MB).
	DefaultBodyLimit = 10 * 1024 * 1024
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Auth      Auth
	Upload    Upload
}

// Webserver implement webserver settings.
type Webserver struct {
	BodyLimit      int    // maximum request body size in bytes
	CORSOrigins    string // comma separated list of allowed origins
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Auth holds admin authentication settings.
type Auth struct {
	JWTSecret   string        // secret for signing session tokens
	TokenExpiry time.Duration // lifetime of a session token
}

// Upload holds settings for the uploaded image store.
type Upload struct {
	Dir         string // flat directory holding uploaded files
	PublicPath  string // url path the directory is served under
	MaxFileSize int64  // maximum upload size in bytes
}
