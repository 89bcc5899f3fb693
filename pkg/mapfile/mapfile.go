// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package mapfile is the in-memory model of a MapServer mapfile.
//
// A Map exclusively owns its layers and output formats.  References between layers (mask, requires)
// are plain names and are never rewritten when a layer is renamed or removed.  Use DanglingReferences
// to find references that no longer resolve.
package mapfile

const (
	DefaultMapName       = "MS"
	DefaultMapStatus     = true
	DefaultMapWidth      = -1
	DefaultMapHeight     = -1
	DefaultMapMaxSize    = 2048
	DefaultResolution    = 72.0
	DefaultDefResolution = 72.0
	DefaultOpacity       = 100
	DefaultScaleDenom    = -1.0
)

const (
	TypeNameLayer        = "layer"
	TypeNameOutputFormat = "output format"
)
