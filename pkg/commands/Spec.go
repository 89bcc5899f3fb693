// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	TypeMapName            = "map.name"
	TypeMapStatus          = "map.status"
	TypeMapSize            = "map.size"
	TypeMapMaxSize         = "map.maxsize"
	TypeMapUnits           = "map.units"
	TypeMapExtent          = "map.extent"
	TypeMapProjection      = "map.projection"
	TypeMapResolution      = "map.resolution"
	TypeMapDefResolution   = "map.defresolution"
	TypeMapDebug           = "map.debug"
	TypeMapAngle           = "map.angle"
	TypeMapShapePath       = "map.shapepath"
	TypeMapFontSet         = "map.fontset"
	TypeMapSymbolSet       = "map.symbolset"
	TypeMapTemplatePattern = "map.templatepattern"
	TypeMapDataPattern     = "map.datapattern"
	TypeMapImageType       = "map.imagetype"
	TypeMapImageColor      = "map.imagecolor"
	TypeMapMetadata        = "map.metadata"
	TypeMapConfig          = "map.config"

	TypeLayerAdd           = "layer.add"
	TypeLayerRemove        = "layer.remove"
	TypeLayerRename        = "layer.rename"
	TypeLayerMove          = "layer.move"
	TypeLayerType          = "layer.type"
	TypeLayerStatus        = "layer.status"
	TypeLayerRequires      = "layer.requires"
	TypeLayerMask          = "layer.mask"
	TypeLayerOpacity       = "layer.opacity"
	TypeLayerGroup         = "layer.group"
	TypeLayerDebug         = "layer.debug"
	TypeLayerMinScaleDenom = "layer.minscaledenom"
	TypeLayerMaxScaleDenom = "layer.maxscaledenom"
	TypeLayerTemplate      = "layer.template"
	TypeLayerHeader        = "layer.header"
	TypeLayerFooter        = "layer.footer"
	TypeLayerData          = "layer.data"
	TypeLayerMetadata      = "layer.metadata"

	TypeOutputFormatAdd    = "outputformat.add"
	TypeOutputFormatRemove = "outputformat.remove"
	TypeOutputFormatUpdate = "outputformat.update"
	TypeOutputFormatOption = "outputformat.option"
)

// Spec is the declarative form of a command, as read from JSON or YAML.
//
//	{"type": "layer.status", "layer": "world_adm0", "value": "OFF"}
type Spec struct {
	Type         string              `json:"type" yaml:"type"`
	Layer        string              `json:"layer,omitempty" yaml:"layer,omitempty"`
	Format       string              `json:"format,omitempty" yaml:"format,omitempty"`
	Key          string              `json:"key,omitempty" yaml:"key,omitempty"`
	Value        interface{}         `json:"value,omitempty" yaml:"value,omitempty"`
	OutputFormat *OutputFormatValues `json:"outputformat,omitempty" yaml:"outputformat,omitempty"`
}

// ParseSpecs parses a list of specs, or a single spec, formatted as json or yaml.
func ParseSpecs(b []byte, format string) ([]Spec, error) {
	b = bytes.TrimSpace(b)
	specs := make([]Spec, 0)
	switch strings.ToLower(format) {
	case "json":
		if len(b) > 0 && b[0] == '{' {
			spec := Spec{}
			if err := json.Unmarshal(b, &spec); err != nil {
				return nil, errors.Wrap(err, "error parsing command spec")
			}
			return append(specs, spec), nil
		}
		if err := json.Unmarshal(b, &specs); err != nil {
			return nil, errors.Wrap(err, "error parsing command specs")
		}
		return specs, nil
	case "yaml", "yml":
		if len(b) > 0 && b[0] != '-' && b[0] != '[' {
			spec := Spec{}
			if err := yaml.Unmarshal(b, &spec); err != nil {
				return nil, errors.Wrap(err, "error parsing command spec")
			}
			return append(specs, spec), nil
		}
		if err := yaml.Unmarshal(b, &specs); err != nil {
			return nil, errors.Wrap(err, "error parsing command specs")
		}
		return specs, nil
	}
	return nil, errors.Errorf("unknown command spec format %q", format)
}
