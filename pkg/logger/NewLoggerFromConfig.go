// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logger

import (
	"github.com/pkg/errors"
)

type NewLoggerFromConfigInput struct {
	InfoDestination  string
	InfoFormat       string
	ErrorDestination string
	ErrorFormat      string
	Verbose          bool
}

// NewLoggerFromConfig opens the destinations and returns a logger.
func NewLoggerFromConfig(input *NewLoggerFromConfigInput) (*Logger, error) {
	for _, format := range []string{input.InfoFormat, input.ErrorFormat} {
		if _, err := Format(map[string]interface{}{}, format); err != nil {
			return nil, err
		}
	}
	errorWriter, err := Open(input.ErrorDestination)
	if err != nil {
		return nil, errors.Wrap(err, "error creating error writer")
	}
	infoWriter, err := Open(input.InfoDestination)
	if err != nil {
		_ = errorWriter.Close()
		return nil, errors.Wrap(err, "error creating info writer")
	}
	return New(infoWriter, input.InfoFormat, errorWriter, input.ErrorFormat, input.Verbose), nil
}
