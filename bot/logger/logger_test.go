package logger

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{name: "default level", level: ""},
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "error"},
		{name: "invalid level falls back to info", level: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.level)
			if err != nil {
				t.Fatalf("New(%q) error = %v", tt.level, err)
			}
			if log == nil {
				t.Fatalf("New(%q) returned nil logger", tt.level)
			}
		})
	}
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	if log == nil {
		t.Fatal("NewNop() returned nil")
	}

	// Verify calls don't panic.
	log.DebugW("test", "key", "value")
	log.InfoW("test", "key", "value")
	log.WarnW("test", "key", "value")
	log.ErrorW("test", "key", "value")

	if err := log.Sync(); err != nil {
		t.Errorf("Sync() on nop logger: %v", err)
	}
}
