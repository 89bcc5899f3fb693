// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Status is the tri-state status of a layer.
type Status int

const (
	StatusOff Status = iota
	StatusOn
	StatusDefault
)

// String returns the keyword used in mapfiles.
func (s Status) String() string {
	switch s {
	case StatusOn:
		return "ON"
	case StatusOff:
		return "OFF"
	case StatusDefault:
		return "DEFAULT"
	}
	return "UNKNOWN"
}

// Description returns the human readable form used in command descriptions.
func (s Status) Description() string {
	switch s {
	case StatusOn:
		return "ON"
	case StatusOff:
		return "OFF"
	}
	return "Default"
}

func (s Status) Valid() bool {
	return s == StatusOff || s == StatusOn || s == StatusDefault
}

// ParseStatus parses ON, OFF or DEFAULT, ignoring case.
func ParseStatus(str string) (Status, error) {
	switch strings.ToUpper(str) {
	case "ON":
		return StatusOn, nil
	case "OFF":
		return StatusOff, nil
	case "DEFAULT":
		return StatusDefault, nil
	}
	return StatusOff, &merrors.ErrInvalidParameter{Name: "status", Value: str, Reason: "expecting ON, OFF, or DEFAULT"}
}
