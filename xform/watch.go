// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"context"
	"path/filepath"

	"cogentcore.org/affine/base/errors"
	"github.com/fsnotify/fsnotify"
)

// Watch opens the given document file and passes it to fn, and then
// does so again every time the file is written, until ctx is done.
// Documents that fail to open are passed to fn with their error.
func Watch(ctx context.Context, filename string, fn func(d *Document, err error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace the file instead of writing it, so watch the directory
	if err := w.Add(filepath.Dir(filename)); err != nil {
		return err
	}
	fn(Open(filename))
	target := filepath.Clean(filename)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fn(Open(filename))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
