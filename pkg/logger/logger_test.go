package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		log, err := New(verbose)
		if err != nil {
			t.Fatalf("New(%v) error: %v", verbose, err)
		}
		if log == nil {
			t.Fatalf("New(%v) returned nil", verbose)
		}
		log.Named("test").Info("logger ready")
	}
}

func TestNewFileWritesToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carquiz.log")
	log, err := NewFile(true, path)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	log.Info("catalog loaded")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "catalog loaded") {
		t.Errorf("log file = %q", data)
	}
}

func TestNewFileQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carquiz.log")
	if _, err := NewFile(false, path); err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("quiet logger should not create the file")
	}
}
