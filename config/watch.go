package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watcher reports edits to a config file. It watches the parent directory
// so editors that save by rename are still seen. Poll never blocks and is
// meant to be called once per frame.
type Watcher struct {
	path string
	w    *fsnotify.Watcher
}

func NewWatcher(path string) (*Watcher, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand config path: %w", err)
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{path: path, w: w}, nil
}

func (w *Watcher) Path() string { return w.path }

// Poll drains pending events. When the file changed it is parsed again and
// returned; otherwise Poll returns nil, nil. A parse failure is returned as
// an error and the caller keeps its current config.
func (w *Watcher) Poll() (*Config, error) {
	changed := false
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return nil, nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			// Saving by rename shows up as a Create of the target name.
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				changed = true
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return nil, nil
			}
			return nil, fmt.Errorf("watch %s: %w", w.path, err)
		default:
			if !changed {
				return nil, nil
			}
			return Load(w.path)
		}
	}
}

func (w *Watcher) Close() error {
	return w.w.Close()
}
