package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// Context keys whose values are attached to every log line when present.
type ctxKey string

const (
	// RequestIDKey carries the per-request id set by the HTTP layer.
	RequestIDKey ctxKey = "request_id"
	// SessionIDKey carries the view session id.
	SessionIDKey ctxKey = "session_id"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	EncodingJSON    = "json"
	EncodingConsole = "console"
)
