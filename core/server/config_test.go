package server_test

import (
	"testing"
	"time"

	"launchpad/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsValidPort(t *testing.T) {
	tests := []struct {
		name string
		port int
		want bool
	}{
		{"Default", 8000, true},
		{"Low", 1, true},
		{"High", 65535, true},
		{"Zero", 0, false},
		{"Negative", -1, false},
		{"TooHigh", 65536, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Port: tt.port}
			assert.Equal(t, tt.want, c.IsValidPort())
		})
	}
}

func TestConfig_UIURL(t *testing.T) {
	tests := []struct {
		name string
		port int
		path string
		want string
	}{
		{"DefaultPort", 8000, "/ui", "http://localhost:8000/ui"},
		{"CustomPort", 9001, "/ui", "http://localhost:9001/ui"},
		{"CustomPath", 8000, "/admin", "http://localhost:8000/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{Host: "127.0.0.1", Port: tt.port, UIPath: tt.path}
			assert.Equal(t, tt.want, c.UIURL())
		})
	}
}

func TestConfig_BaseURL(t *testing.T) {
	c := server.Config{Host: "127.0.0.1", Port: 8000}
	assert.Equal(t, "http://127.0.0.1:8000", c.BaseURL())

	c.Host = "0.0.0.0"
	c.Port = 9090
	assert.Equal(t, "http://0.0.0.0:9090", c.BaseURL())
}

func TestConfig_Durations(t *testing.T) {
	c := server.Config{StartupDelaySeconds: 3, ShutdownTimeoutSeconds: 5, ReadyTimeoutSeconds: 30}
	assert.Equal(t, 3*time.Second, c.StartupDelay())
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout())
	assert.Equal(t, 30*time.Second, c.ReadyTimeout())
}
