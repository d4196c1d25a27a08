package server

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/npillmayer/translit/keymap"
)

// WatchKeymap reloads the keymap file at path whenever it changes and
// replaces the server's engine. A keymap which fails to load leaves the
// current engine in place. Watching stops when ctx is cancelled.
//
// The directory is watched rather than the file, as editors tend to replace
// files instead of writing to them.
func (s *Server) WatchKeymap(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return err
	}
	tracer().Infof("watching keymap %s", absPath)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != absPath || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				s.reloadKeymap(absPath)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				tracer().Errorf("keymap watcher: %v", err)
			}
		}
	}()
	return nil
}

func (s *Server) reloadKeymap(path string) {
	eng, err := keymap.LoadEngine(path)
	if err != nil {
		tracer().Errorf("keeping previous keymap: %v", err)
		return
	}
	s.SetEngine(eng)
	tracer().Infof("reloaded keymap %s", path)
}
