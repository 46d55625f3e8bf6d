package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeAtomic replaces path by rename so the watcher sees one complete file.
func writeAtomic(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("failed to replace config: %v", err)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("controls:\n  key_step: 0.05\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	writeAtomic(t, path, "controls:\n  key_step: 0.2\n")

	select {
	case cfg := <-w.Updates():
		if cfg.Controls.KeyStep != 0.2 {
			t.Errorf("expected key step 0.2 after reload, got %v", cfg.Controls.KeyStep)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcherSkipsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("controls:\n  key_step: 0.05\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	writeAtomic(t, path, "controls:\n  smoothing: 9\n")

	select {
	case cfg := <-w.Updates():
		t.Errorf("invalid config should not be delivered, got %+v", cfg.Controls)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
