// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

func setLayerString(set func(l *mapfile.Layer, value string)) func(l *mapfile.Layer, value string) error {
	return func(l *mapfile.Layer, value string) error {
		set(l, value)
		return nil
	}
}

var (
	LayerStatus = &LayerAttribute[mapfile.Status]{
		Name:   "status",
		Get:    (*mapfile.Layer).Status,
		Set:    (*mapfile.Layer).SetStatus,
		Format: mapfile.Status.Description,
	}
	LayerType = &LayerAttribute[mapfile.LayerType]{
		Name: "type",
		Get:  (*mapfile.Layer).Type,
		Set:  (*mapfile.Layer).SetType,
	}
	LayerRequires = &LayerAttribute[string]{
		Name: "require",
		Get:  (*mapfile.Layer).Requires,
		Set:  setLayerString((*mapfile.Layer).SetRequires),
	}
	LayerMask = &LayerAttribute[string]{
		Name: "mask",
		Get:  (*mapfile.Layer).Mask,
		Set:  setLayerString((*mapfile.Layer).SetMask),
	}
	LayerOpacity = &LayerAttribute[int]{
		Name: "opacity",
		Get:  (*mapfile.Layer).Opacity,
		Set:  (*mapfile.Layer).SetOpacity,
	}
	LayerGroup = &LayerAttribute[string]{
		Name: "group",
		Get:  (*mapfile.Layer).Group,
		Set:  setLayerString((*mapfile.Layer).SetGroup),
	}
	LayerDebug = &LayerAttribute[int]{
		Name: "debug level",
		Get:  (*mapfile.Layer).Debug,
		Set:  (*mapfile.Layer).SetDebug,
	}
	LayerMinScaleDenom = &LayerAttribute[float64]{
		Name:   "min scale denominator",
		Get:    (*mapfile.Layer).MinScaleDenom,
		Set:    (*mapfile.Layer).SetMinScaleDenom,
		Format: formatFloat,
	}
	LayerMaxScaleDenom = &LayerAttribute[float64]{
		Name:   "max scale denominator",
		Get:    (*mapfile.Layer).MaxScaleDenom,
		Set:    (*mapfile.Layer).SetMaxScaleDenom,
		Format: formatFloat,
	}
	LayerTemplate = &LayerAttribute[string]{
		Name: "template",
		Get:  (*mapfile.Layer).Template,
		Set:  setLayerString((*mapfile.Layer).SetTemplate),
	}
	LayerHeader = &LayerAttribute[string]{
		Name: "header",
		Get:  (*mapfile.Layer).Header,
		Set:  setLayerString((*mapfile.Layer).SetHeader),
	}
	LayerFooter = &LayerAttribute[string]{
		Name: "footer",
		Get:  (*mapfile.Layer).Footer,
		Set:  setLayerString((*mapfile.Layer).SetFooter),
	}
	LayerData = &LayerAttribute[string]{
		Name: "data",
		Get:  (*mapfile.Layer).Data,
		Set:  setLayerString((*mapfile.Layer).SetData),
	}
)

func NewSetLayerStatus(m *mapfile.Map, layer string, status mapfile.Status) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerStatus, m, layer, status))
}

func NewSetLayerRequires(m *mapfile.Map, layer string, requires string) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerRequires, m, layer, requires))
}

func NewSetLayerMask(m *mapfile.Map, layer string, mask string) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerMask, m, layer, mask))
}

func NewSetLayerGroup(m *mapfile.Map, layer string, group string) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerGroup, m, layer, group))
}

func NewSetLayerOpacity(m *mapfile.Map, layer string, opacity int) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerOpacity, m, layer, opacity))
}

func NewSetLayerDebug(m *mapfile.Map, layer string, debug int) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerDebug, m, layer, debug))
}

func NewSetLayerMinScaleDenom(m *mapfile.Map, layer string, denom float64) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerMinScaleDenom, m, layer, denom))
}

func NewSetLayerMaxScaleDenom(m *mapfile.Map, layer string, denom float64) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerMaxScaleDenom, m, layer, denom))
}

func NewSetLayerTemplate(m *mapfile.Map, layer string, template string) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerTemplate, m, layer, template))
}

func NewSetLayerHeader(m *mapfile.Map, layer string, header string) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerHeader, m, layer, header))
}

func NewSetLayerFooter(m *mapfile.Map, layer string, footer string) (Command, error) {
	return toCommand(NewSetLayerAttribute(LayerFooter, m, layer, footer))
}
