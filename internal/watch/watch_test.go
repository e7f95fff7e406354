package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/VictorDenisov/zoompan/zoompan"
)

func TestReloadOnWrite(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "zoompan.yaml")
	if err := os.WriteFile(fileName, []byte("zoom_speed: 0.05\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan zoompan.Config, 4)
	w, err := NewConfigWatcher(fileName, func(cfg zoompan.Config) { got <- cfg })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	// An invalid file is skipped.
	if err := os.WriteFile(fileName, []byte("zoom_speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(fileName, []byte("zoom_speed: 0.25\npan_enabled: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.ZoomSpeed == 0.25 {
				if cfg.PanEnabled {
					t.Errorf("Expected pan to be disabled, got %+v", cfg)
				}
				return
			}
			// A reload may observe the file between truncate and write.
		case <-timeout:
			t.Fatal("Timed out waiting for reload")
		}
	}
}

func TestIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "zoompan.yaml")
	if err := os.WriteFile(fileName, []byte("zoom_speed: 0.05\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := make(chan zoompan.Config, 1)
	w, err := NewConfigWatcher(fileName, func(cfg zoompan.Config) { got <- cfg })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("zoom_speed: 0.5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	<-done

	select {
	case cfg := <-got:
		t.Errorf("Unexpected reload %+v", cfg)
	default:
	}
}

func TestMissingDirectory(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "missing", "zoompan.yaml"), func(zoompan.Config) {})
	if err == nil {
		t.Errorf("Expected error for missing directory")
	}
}

func TestNoReloadAfterCancel(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "zoompan.yaml")
	if err := os.WriteFile(fileName, []byte("zoom_speed: 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	calls := 0
	w, err := NewConfigWatcher(fileName, func(zoompan.Config) { calls++ })
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer w.watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	w.reload(ctx)
	if calls != 1 {
		t.Fatalf("Expected one delivery while running, got %d", calls)
	}

	cancel()
	w.reload(ctx)
	if calls != 1 {
		t.Errorf("Expected no delivery after cancel, got %d", calls)
	}
}
