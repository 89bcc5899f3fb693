// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package document holds the mapfile being edited.
//
// A Document is either loaded from a path or not.  A document that failed to load still holds a default map,
// so every accessor returns the documented defaults.  All methods are safe for concurrent use.
package document

import (
	"context"
	"sync"

	"github.com/spatialcurrent/go-mapfile/pkg/commands"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/serializer"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

type Document struct {
	mutex    *sync.Mutex
	path     string
	loaded   bool
	modified bool
	m        *mapfile.Map
}

// New returns an unloaded document holding a default map.
func New() *Document {
	return &Document{
		mutex: &sync.Mutex{},
		m:     mapfile.New(),
	}
}

// Load parses the mapfile at the path.  On failure, the returned document is unloaded and the error is returned.
func Load(path string) (*Document, error) {
	d := New()
	d.path = path
	m, err := parser.ParseFile(path)
	if err != nil {
		return d, err
	}
	d.m = m
	d.loaded = true
	return d, nil
}

func (d *Document) IsLoaded() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.loaded
}

func (d *Document) Path() string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.path
}

// Modified returns true if a command was applied or reverted since the document was loaded or saved.
func (d *Document) Modified() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.modified
}

// Snapshot returns a deep copy of the map.
func (d *Document) Snapshot() *mapfile.Map {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.Clone()
}

// Apply applies the command to the map.
func (d *Document) Apply(c commands.Command) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if err := c.Apply(d.m); err != nil {
		return err
	}
	d.modified = true
	return nil
}

// Revert reverts the command, which must be the last command applied and not yet reverted.
func (d *Document) Revert(c commands.Command) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if err := c.Revert(d.m); err != nil {
		return err
	}
	d.modified = true
	return nil
}

// Execute builds the command for the function against the current map and applies it, in one critical section.
func (d *Document) Execute(build func(m *mapfile.Map) (commands.Command, error)) (commands.Command, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	c, err := build(d.m)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(d.m); err != nil {
		return nil, err
	}
	d.modified = true
	return c, nil
}

// ApplySpecs builds a group from the specs and applies it.
func (d *Document) ApplySpecs(description string, specs []commands.Spec) (commands.Command, error) {
	return d.Execute(func(m *mapfile.Map) (commands.Command, error) {
		return commands.BuildGroup(m, description, specs)
	})
}

// Save writes the map to the path, or to the path the document was loaded from if the path is blank.
// Tombstoned output formats are dropped and output format states are marked as saved.
func (d *Document) Save(path string) error {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if len(path) == 0 {
		path = d.path
	}
	if len(path) == 0 {
		return &merrors.ErrMissingRequiredParameter{Name: "path"}
	}
	err := serializer.WriteFile(&serializer.WriteFileInput{Uri: path, Map: d.m})
	if err != nil {
		return err
	}
	d.m.MarkSaved()
	d.path = path
	d.loaded = true
	d.modified = false
	return nil
}

// Render renders a snapshot of the map.  The lock is not held while rendering.
func (d *Document) Render(ctx context.Context, r render.Renderer, width int, height int) *render.Result {
	return render.Bridge(ctx, r, d.Snapshot(), width, height)
}
