// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"fmt"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// Size is the width and height of a map image.
type Size struct {
	Width  int
	Height int
}

func (s Size) String() string {
	return fmt.Sprintf("%d x %d", s.Width, s.Height)
}

func formatSwitch(value bool) string {
	if value {
		return "ON"
	}
	return "OFF"
}

func formatFloat(value float64) string {
	return fmt.Sprintf("%g", value)
}

func formatColor(c *mapfile.Color) string {
	if c == nil {
		return ""
	}
	return c.String()
}

var (
	MapName = &MapAttribute[string]{
		Name: "name",
		Get:  (*mapfile.Map).Name,
		Set:  (*mapfile.Map).SetName,
	}
	MapStatus = &MapAttribute[bool]{
		Name:   "status",
		Get:    (*mapfile.Map).Status,
		Set:    func(m *mapfile.Map, value bool) error { m.SetStatus(value); return nil },
		Format: formatSwitch,
	}
	MapSize = &MapAttribute[Size]{
		Name: "size",
		Get:  func(m *mapfile.Map) Size { return Size{Width: m.Width(), Height: m.Height()} },
		Set:  func(m *mapfile.Map, value Size) error { return m.SetSize(value.Width, value.Height) },
	}
	MapMaxSize = &MapAttribute[int]{
		Name: "maxsize",
		Get:  (*mapfile.Map).MaxSize,
		Set:  (*mapfile.Map).SetMaxSize,
	}
	MapUnits = &MapAttribute[mapfile.Units]{
		Name: "units",
		Get:  (*mapfile.Map).Units,
		Set:  (*mapfile.Map).SetUnits,
	}
	MapExtent = &MapAttribute[mapfile.Extent]{
		Name: "extent",
		Get:  (*mapfile.Map).Extent,
		Set:  func(m *mapfile.Map, value mapfile.Extent) error { m.SetExtent(value); return nil },
	}
	MapProjection = &MapAttribute[mapfile.Projection]{
		Name: "projection",
		Get:  (*mapfile.Map).Projection,
		Set:  func(m *mapfile.Map, value mapfile.Projection) error { m.SetProjection(value); return nil },
	}
	MapResolution = &MapAttribute[float64]{
		Name:   "resolution",
		Get:    (*mapfile.Map).Resolution,
		Set:    (*mapfile.Map).SetResolution,
		Format: formatFloat,
	}
	MapDefResolution = &MapAttribute[float64]{
		Name:   "defresolution",
		Get:    (*mapfile.Map).DefResolution,
		Set:    (*mapfile.Map).SetDefResolution,
		Format: formatFloat,
	}
	MapDebug = &MapAttribute[int]{
		Name: "debug level",
		Get:  (*mapfile.Map).Debug,
		Set:  (*mapfile.Map).SetDebug,
	}
	MapAngle = &MapAttribute[float64]{
		Name:   "angle",
		Get:    (*mapfile.Map).Angle,
		Set:    func(m *mapfile.Map, value float64) error { m.SetAngle(value); return nil },
		Format: formatFloat,
	}
	MapShapePath = &MapAttribute[string]{
		Name: "shapepath",
		Get:  (*mapfile.Map).ShapePath,
		Set:  func(m *mapfile.Map, value string) error { m.SetShapePath(value); return nil },
	}
	MapFontSet = &MapAttribute[string]{
		Name: "fontset",
		Get:  (*mapfile.Map).FontSet,
		Set:  func(m *mapfile.Map, value string) error { m.SetFontSet(value); return nil },
	}
	MapSymbolSet = &MapAttribute[string]{
		Name: "symbolset",
		Get:  (*mapfile.Map).SymbolSet,
		Set:  func(m *mapfile.Map, value string) error { m.SetSymbolSet(value); return nil },
	}
	MapTemplatePattern = &MapAttribute[string]{
		Name: "templatepattern",
		Get:  (*mapfile.Map).TemplatePattern,
		Set:  func(m *mapfile.Map, value string) error { m.SetTemplatePattern(value); return nil },
	}
	MapDataPattern = &MapAttribute[string]{
		Name: "datapattern",
		Get:  (*mapfile.Map).DataPattern,
		Set:  func(m *mapfile.Map, value string) error { m.SetDataPattern(value); return nil },
	}
	MapImageType = &MapAttribute[string]{
		Name: "imagetype",
		Get:  (*mapfile.Map).ImageType,
		Set:  func(m *mapfile.Map, value string) error { m.SetImageType(value); return nil },
	}
	MapImageColor = &MapAttribute[*mapfile.Color]{
		Name:   "imagecolor",
		Get:    (*mapfile.Map).ImageColor,
		Set:    (*mapfile.Map).SetImageColor,
		Format: formatColor,
	}
)

func NewSetMapName(m *mapfile.Map, name string) Command {
	return NewSetMapAttribute(MapName, m, name)
}

func NewSetMapStatus(m *mapfile.Map, status bool) Command {
	return NewSetMapAttribute(MapStatus, m, status)
}

func NewSetMapSize(m *mapfile.Map, width int, height int) Command {
	return NewSetMapAttribute(MapSize, m, Size{Width: width, Height: height})
}

func NewSetMapMaxSize(m *mapfile.Map, maxSize int) Command {
	return NewSetMapAttribute(MapMaxSize, m, maxSize)
}

func NewSetMapUnits(m *mapfile.Map, units mapfile.Units) Command {
	return NewSetMapAttribute(MapUnits, m, units)
}

func NewSetMapExtent(m *mapfile.Map, extent mapfile.Extent) Command {
	return NewSetMapAttribute(MapExtent, m, extent)
}

func NewSetMapProjection(m *mapfile.Map, projection mapfile.Projection) Command {
	return NewSetMapAttribute(MapProjection, m, projection)
}

func NewSetMapImageColor(m *mapfile.Map, c *mapfile.Color) Command {
	return NewSetMapAttribute(MapImageColor, m, c)
}
