package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func TestNew_MemoryStore(t *testing.T) {
	created, err := New(context.Background(), &Config{Type: "memory"}, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer created.Close()

	if _, ok := created.(*MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", created)
	}
}

func TestNew_SQLiteStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "factory_test_*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	created, err := New(context.Background(), &Config{
		Type:       "sqlite",
		SQLitePath: filepath.Join(tempDir, "test.db"),
	}, testLogger())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer created.Close()

	if _, ok := created.(*SQLiteStore); !ok {
		t.Errorf("Expected *SQLiteStore, got %T", created)
	}
}

func TestNew_TypeIsCaseInsensitive(t *testing.T) {
	created, err := New(context.Background(), &Config{Type: "MEMORY"}, testLogger())
	if err != nil {
		t.Fatalf("New() failed for upper-case type: %v", err)
	}
	created.Close()
}

func TestNew_UnsupportedType(t *testing.T) {
	if _, err := New(context.Background(), &Config{Type: "cassandra"}, testLogger()); err == nil {
		t.Error("New() should fail for an unsupported store type")
	}
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(context.Background(), nil, testLogger()); err == nil {
		t.Error("New() should fail for nil config")
	}
}
