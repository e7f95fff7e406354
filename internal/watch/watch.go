// Package watch reloads a zoompan configuration file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/VictorDenisov/zoompan/zoompan"
)

const DefaultDebounce = 100 * time.Millisecond

type ConfigWatcher struct {
	fileName string
	watcher  *fsnotify.Watcher
	onChange func(zoompan.Config)
	debounce time.Duration
}

// NewConfigWatcher watches the directory holding fileName, since editors often
// replace a file instead of writing it in place.
func NewConfigWatcher(fileName string, onChange func(zoompan.Config)) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(fileName)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", fileName, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &ConfigWatcher{abs, watcher, onChange, DefaultDebounce}, nil
}

// Run delivers reloaded configurations until ctx is done. Files that fail to
// load are logged and skipped; the last good configuration stays in effect.
func (w *ConfigWatcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	debounce := time.NewTimer(w.debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.fileName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Tracef("Config event: %v", event)
			debounce.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("Watcher error: %v", err)
		case <-debounce.C:
			w.reload(ctx)
		}
	}
}

// reload skips delivery once ctx is done, so callbacks never run after Run's
// caller has started shutting down.
func (w *ConfigWatcher) reload(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	cfg, err := zoompan.LoadConfig(w.fileName)
	if err != nil {
		log.Warnf("Keeping previous config: %v", err)
		return
	}
	log.Infof("Reloaded config from %s", w.fileName)
	w.onChange(cfg)
}
