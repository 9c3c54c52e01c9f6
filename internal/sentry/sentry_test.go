package sentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_NoopWhenOff(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"reporting disabled", Options{Version: "0.1.0", DSN: "https://key@example.invalid/1"}},
		{"no dsn", Options{Version: "0.1.0", Enabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Init(tt.opts))
			assert.False(t, IsEnabled())

			// Every entry point is a no-op while disabled.
			Flush()
			SetLayout(1200, "desktop/expanded", true)
			func() {
				defer RecoverPanic()
			}()
		})
	}
}

func TestLayoutTags(t *testing.T) {
	assert.Equal(t, map[string]string{"layout": "mobile/expanded", "dark": "true"}, layoutTags("mobile/expanded", true))
	assert.Equal(t, "false", layoutTags("desktop/compact", false)["dark"])
}
