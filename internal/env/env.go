package env

// Build metadata, overridden at link time via -ldflags.
var (
	AppName    = "mime-detective"
	Version    = "dev"
	CommitHash = "none"
	BuildTime  = "unknown"
)
