// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package output

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

type OpenInput struct {
	Uri       string
	Mkdirs    bool
	Overwrite bool
}

// Open returns a writer for the output uri.  Closing the writer for stdout is a no-op.
func Open(input *OpenInput) (io.WriteCloser, error) {
	if input.Uri == Stdout || len(input.Uri) == 0 {
		return nopCloser{Writer: os.Stdout}, nil
	}
	p, err := homedir.Expand(input.Uri)
	if err != nil {
		return nil, errors.Wrapf(err, "error expanding output uri %q", input.Uri)
	}
	if !input.Overwrite {
		if _, err := os.Stat(p); err == nil {
			return nil, errors.Errorf("output file %q already exists", input.Uri)
		}
	}
	if input.Mkdirs {
		if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
			return nil, errors.Wrapf(err, "error creating parent directories for %q", input.Uri)
		}
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) // #nosec
	if err != nil {
		return nil, errors.Wrapf(err, "error opening output file %q", input.Uri)
	}
	return f, nil
}

// Write writes the bytes to the output uri.
func Write(input *OpenInput, b []byte) error {
	w, err := Open(input)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		_ = w.Close()
		return errors.Wrapf(err, "error writing to %q", input.Uri)
	}
	return w.Close()
}
