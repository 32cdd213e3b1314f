package main

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRunFailsEarlyWithInitStatus(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config lookup via XDG_CONFIG_HOME is linux only")
	}

	tests := []struct {
		name   string
		config string
	}{
		{"malformed yaml", "window: [unterminated\n"},
		{"invalid settings", "camera:\n  min_fov: 90\n  max_fov: 20\n"},
		{"unknown log level", "logging:\n  level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			dir := filepath.Join(home, "orrery")
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(tt.config), 0644); err != nil {
				t.Fatal(err)
			}
			t.Setenv("XDG_CONFIG_HOME", home)

			if got := run(io.Discard); got != exitInitFailure {
				t.Errorf("run() = %d, want %d", got, exitInitFailure)
			}
		})
	}
}
