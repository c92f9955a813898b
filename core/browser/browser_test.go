package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "open", []string{"http://localhost:8000/ui"}},
		{"linux", "xdg-open", []string{"http://localhost:8000/ui"}},
		{"freebsd", "xdg-open", []string{"http://localhost:8000/ui"}},
		{"windows", "cmd", []string{"/c", "start", "http://localhost:8000/ui"}},
		{"plan9", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := command(tt.goos, "http://localhost:8000/ui")
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
