package handler

const (
	// APIPrefix is the path prefix for all JSON API routes.
	APIPrefix = "/api"

	// AdminPrefix is the path prefix for admin-only JSON API routes.
	AdminPrefix = APIPrefix + "/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// MsgDatabaseError is the generic message for write-path failures.
	MsgDatabaseError = "Database error"

	// MsgServerError is the generic message for unexpected failures.
	MsgServerError = "Server error"
)
