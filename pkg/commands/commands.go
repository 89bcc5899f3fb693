// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package commands contains the reversible edits of a mapfile.Map.
//
// A command captures the prior value from the map when it is constructed.  Apply makes the change and Revert
// restores the prior value.  Commands address layers and output formats by name, so a command stays valid
// after the entity it targets was removed and restored by another command.
package commands

import (
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// Command is a reversible edit of a map.
type Command interface {
	Apply(m *mapfile.Map) error
	Revert(m *mapfile.Map) error
	Description() string
}
