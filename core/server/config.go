package server

import (
	"fmt"
	"time"
)

// Config holds configuration for the backend server process.
type Config struct {
	// Host is the interface uvicorn binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the server will listen.
	Port int `mapstructure:"port" default:"8000"`
	// ApiKey is the secret exported to the backend as OPENAI_API_KEY.
	ApiKey string `mapstructure:"api_key" default:""`
	// App is the uvicorn application target (module:attribute).
	App string `mapstructure:"app" default:"backend.app:app"`
	// Reload enables uvicorn's auto-reload on source changes.
	Reload bool `mapstructure:"reload" default:"true"`
	// UIPath is the path of the web UI opened in the browser.
	UIPath string `mapstructure:"ui_path" default:"/ui"`
	// StartupDelaySeconds is how long to wait after launch before
	// opening the browser.
	StartupDelaySeconds int `mapstructure:"startup_delay_seconds" default:"3"`
	// ShutdownTimeoutSeconds is the grace period between terminate
	// and kill when stopping an attached server.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
	// ReadyTimeoutSeconds bounds the readiness poll of the UI URL.
	ReadyTimeoutSeconds int `mapstructure:"ready_timeout_seconds" default:"30"`
}

// ApiKeyEnv is the environment variable the backend reads its key from.
const ApiKeyEnv = "OPENAI_API_KEY"

// IsValidPort checks if the configured port is usable.
func (c Config) IsValidPort() bool {
	return c.Port > 0 && c.Port <= 65535
}

// BaseURL returns the address the server listens on.
func (c Config) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", c.Host, c.Port)
}

// UIURL returns the browser URL for the web UI. The host is always
// localhost, regardless of the bind interface.
func (c Config) UIURL() string {
	return fmt.Sprintf("http://localhost:%d%s", c.Port, c.UIPath)
}

// StartupDelay returns the post-launch wait as a duration.
func (c Config) StartupDelay() time.Duration {
	return time.Duration(c.StartupDelaySeconds) * time.Second
}

// ShutdownTimeout returns the terminate-to-kill grace period as a duration.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// ReadyTimeout returns the readiness poll bound as a duration.
func (c Config) ReadyTimeout() time.Duration {
	return time.Duration(c.ReadyTimeoutSeconds) * time.Second
}
