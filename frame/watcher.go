// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/cubesphere/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a settings file whenever it changes.
type Watcher struct {

	// Filename is the settings file, opened with [Open].
	Filename string

	// OnChange is called with the new settings after each
	// successful reload.
	OnChange func(s Settings)

	fw *fsnotify.Watcher
}

// NewWatcher returns a new watcher for the given settings file.
func NewWatcher(filename string, onChange func(s Settings)) *Watcher {
	return &Watcher{Filename: filepath.Clean(filename), OnChange: onChange}
}

// Start begins watching. It watches the directory of the file, so that
// editors that save by replacing the file are also seen. [Watcher.Run]
// calls it if it has not been called yet.
func (w *Watcher) Start() error {
	if w.fw != nil {
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.Filename)); err != nil {
		fw.Close()
		return err
	}
	w.fw = fw
	return nil
}

// Run reloads the settings on every change until the context is done.
// Settings that fail to load are logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Start(); err != nil {
		return err
	}
	defer func() {
		w.fw.Close()
		w.fw = nil
	}()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.Filename || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			s, err := Open(w.Filename)
			if errors.Log(err) != nil {
				continue
			}
			slog.Info("reloaded settings", "file", w.Filename)
			if w.OnChange != nil {
				w.OnChange(s)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
