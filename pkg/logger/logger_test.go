package logger

import (
	"context"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil after initialization")
	}

	// Init is idempotent
	err = Init()
	if err != nil {
		t.Fatalf("second initialization failed: %v", err)
	}

	if Get() != logger {
		t.Fatal("second initialization replaced the global logger")
	}
}

func TestLoggerLazyGet(t *testing.T) {
	// Get must work without an explicit Init call.
	logger := Get()
	if logger == nil {
		t.Fatal("lazy Get returned nil")
	}
}

// Basic logging test (slog-backed; no Sugar)
func TestLoggerBasic(t *testing.T) {
	logger := Get()
	if logger == nil {
		t.Fatal("logger is nil")
	}

	ctx := context.Background()
	logger.Info(ctx, "test message", String("k", "v"), Int64("id", 7))
}

func TestLoggerNamed(t *testing.T) {
	namedLogger := Named("test")
	if namedLogger == nil {
		t.Fatal("named logger is nil")
	}

	ctx := context.Background()
	namedLogger.Info(ctx, "test message")
}

func TestSetLevelString(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "", " INFO "} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("SetLevelString(%q) failed: %v", level, err)
		}
	}

	if err := SetLevelString("verbose"); err == nil {
		t.Error("SetLevelString accepted an unknown level")
	}
}
