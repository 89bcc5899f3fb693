// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func PrintConfig(w io.Writer, c mapper) error {
	b, err := yaml.Marshal(c.Map())
	if err != nil {
		return errors.Wrap(err, "error serializing config")
	}
	fmt.Fprintln(w, "=================================================") // #nosec
	fmt.Fprintln(w, "Configuration:")                                    // #nosec
	fmt.Fprintln(w, "-------------------------------------------------") // #nosec
	fmt.Fprintln(w, string(b))                                           // #nosec
	fmt.Fprintln(w, "=================================================") // #nosec
	return nil
}
