// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package document

import (
	"github.com/spatialcurrent/go-mapfile/pkg/commands"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

func (d *Document) MapName() string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.Name()
}

func (d *Document) MapStatus() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.Status()
}

func (d *Document) MapWidth() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.Width()
}

func (d *Document) MapHeight() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.Height()
}

func (d *Document) MapMaxSize() int {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.MaxSize()
}

func (d *Document) MapUnits() mapfile.Units {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.Units()
}

// Layers returns the layer names in drawing order.
func (d *Document) Layers() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.m.LayerNames()
}

// Layer returns a copy of the named layer.
func (d *Document) Layer(name string) (*mapfile.Layer, bool) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	l := d.m.Layer(name)
	if l == nil {
		return nil, false
	}
	return l.Clone(), true
}

// OutputFormats returns copies of the live output formats.
func (d *Document) OutputFormats() []*mapfile.OutputFormat {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	formats := make([]*mapfile.OutputFormat, 0, len(d.m.OutputFormats()))
	for _, f := range d.m.OutputFormats() {
		formats = append(formats, f.Clone())
	}
	return formats
}

// SetMapName renames the map and returns the applied command.
func (d *Document) SetMapName(name string) (commands.Command, error) {
	return d.Execute(func(m *mapfile.Map) (commands.Command, error) {
		return commands.NewSetMapName(m, name), nil
	})
}

func (d *Document) SetMapStatus(status bool) (commands.Command, error) {
	return d.Execute(func(m *mapfile.Map) (commands.Command, error) {
		return commands.NewSetMapStatus(m, status), nil
	})
}

func (d *Document) SetMapSize(width int, height int) (commands.Command, error) {
	return d.Execute(func(m *mapfile.Map) (commands.Command, error) {
		return commands.NewSetMapSize(m, width, height), nil
	})
}

func (d *Document) SetMapMaxSize(maxSize int) (commands.Command, error) {
	return d.Execute(func(m *mapfile.Map) (commands.Command, error) {
		return commands.NewSetMapMaxSize(m, maxSize), nil
	})
}
