// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package input opens source files, transparently decompressing them based
// on their file extension.
package input

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// readCloser pairs a decompressing reader with the closers of the layers
// underneath it. Closers are called in order.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

// Close closes all layers and returns the first error encountered.
func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if cErr := c.Close(); cErr != nil && err == nil {
			err = cErr
		}
	}
	return err
}

// Open opens the file at path for reading. Files ending in ".gz" are read
// as gzip, ".dz" as dictzip and ".bz2" as bzip2, including multi-stream
// bzip2 archives. Any other file is returned as is. The extension is matched
// case-insensitively.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("reading gzip header of %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{z, f}}, nil
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("reading dictzip header of %q: %w", path, err)
		}
		return &readCloser{Reader: z, closers: []io.Closer{f}}, nil
	case ".bz2":
		return &readCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}
