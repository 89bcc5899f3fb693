// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logger

import (
	"bufio"
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

// Writer is a buffered line writer.
type Writer struct {
	writer *bufio.Writer
	closer io.Closer
}

func NewWriter(w io.Writer) *Writer {
	writer := &Writer{writer: bufio.NewWriter(w)}
	if c, ok := w.(io.Closer); ok && w != os.Stdout && w != os.Stderr {
		writer.closer = c
	}
	return writer
}

// Open returns a writer for the destination: stdout, stderr, or a file path that is appended to.
func Open(destination string) (*Writer, error) {
	switch destination {
	case "", "stdout":
		return NewWriter(os.Stdout), nil
	case "stderr":
		return NewWriter(os.Stderr), nil
	}
	path, err := homedir.Expand(destination)
	if err != nil {
		return nil, errors.Wrapf(err, "error expanding destination %q", destination)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) // #nosec
	if err != nil {
		return nil, errors.Wrapf(err, "error opening destination %q", destination)
	}
	return NewWriter(f), nil
}

func (w *Writer) WriteLine(line string) error {
	if _, err := w.writer.WriteString(line); err != nil {
		return err
	}
	return w.writer.WriteByte('\n')
}

func (w *Writer) Flush() error {
	return w.writer.Flush()
}

func (w *Writer) Close() error {
	if err := w.writer.Flush(); err != nil {
		return err
	}
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
