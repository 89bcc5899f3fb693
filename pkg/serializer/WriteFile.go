// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serializer

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

type WriteFileInput struct {
	Uri         string
	Parents     bool // create parent directories
	Map         *mapfile.Map
	OnTombstone func(f *mapfile.OutputFormat)
}

// WriteFile writes the map to the file at the uri.
// The text is written to a temporary file in the same directory and then renamed over the target.
func WriteFile(input *WriteFileInput) error {
	path, err := homedir.Expand(input.Uri)
	if err != nil {
		return errors.Wrapf(err, "error expanding uri %q", input.Uri)
	}
	dir := filepath.Dir(path)
	if input.Parents {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "error creating parent directories for uri %q", input.Uri)
		}
	}
	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "error creating temporary file for uri %q", input.Uri)
	}
	err = Write(&WriteInput{Writer: tmp, Map: input.Map, OnTombstone: input.OnTombstone})
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "error writing object to uri %q", input.Uri)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "error closing temporary file for uri %q", input.Uri)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "error setting permissions for uri %q", input.Uri)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "error renaming temporary file to uri %q", input.Uri)
	}
	return nil
}
