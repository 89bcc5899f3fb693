// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package parser

import (
	"io/ioutil"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// ParseFile reads and parses the mapfile at the path.  A leading ~ is expanded to the home directory.
// Paths that are not regular files, such as directories or devices, are rejected before reading.
func ParseFile(path string) (*mapfile.Map, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error expanding path %q", path)
	}
	info, err := os.Stat(p)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening mapfile %q", path)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Errorf("error opening mapfile %q: not a regular file", path)
	}
	source, err := ioutil.ReadFile(p)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading mapfile %q", path)
	}
	return Parse(path, source)
}
