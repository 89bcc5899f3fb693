// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Build returns the command for the spec, capturing the prior values from the map.
func Build(m *mapfile.Map, spec Spec) (Command, error) {
	t := strings.ToLower(spec.Type)
	switch {
	case strings.HasPrefix(t, "map."):
		return buildMapCommand(m, t, spec)
	case strings.HasPrefix(t, "layer."):
		if spec.Layer == "" {
			return nil, &merrors.ErrMissingRequiredParameter{Name: "layer"}
		}
		return buildLayerCommand(m, t, spec)
	case strings.HasPrefix(t, "outputformat."):
		return buildOutputFormatCommand(m, t, spec)
	}
	return nil, &merrors.ErrUnknownCommand{Type: spec.Type}
}

// BuildGroup builds the commands of the specs as a group.
// Each command is built against a copy of the map with the previous commands applied,
// so specs may refer to entities created by the specs before them.
func BuildGroup(m *mapfile.Map, description string, specs []Spec) (*Group, error) {
	scratch := m.Clone()
	commands := make([]Command, 0, len(specs))
	for i, spec := range specs {
		c, err := Build(scratch, spec)
		if err != nil {
			return nil, errors.Wrapf(err, "error building command %d (%s)", i, spec.Type)
		}
		if err := c.Apply(scratch); err != nil {
			return nil, errors.Wrapf(err, "error applying command %d (%s)", i, spec.Type)
		}
		commands = append(commands, c)
	}
	return NewGroup(description, commands...), nil
}

func stringAttribute(m *mapfile.Map, attribute *MapAttribute[string], spec Spec) (Command, error) {
	str, err := toString(spec.Type, spec.Value)
	if err != nil {
		return nil, err
	}
	return NewSetMapAttribute(attribute, m, str), nil
}

func floatAttribute(m *mapfile.Map, attribute *MapAttribute[float64], spec Spec) (Command, error) {
	f, err := toFloat64(spec.Type, spec.Value)
	if err != nil {
		return nil, err
	}
	return NewSetMapAttribute(attribute, m, f), nil
}

func intAttribute(m *mapfile.Map, attribute *MapAttribute[int], spec Spec) (Command, error) {
	i, err := toInt(spec.Type, spec.Value)
	if err != nil {
		return nil, err
	}
	return NewSetMapAttribute(attribute, m, i), nil
}

func buildMapCommand(m *mapfile.Map, t string, spec Spec) (Command, error) {
	switch t {
	case TypeMapName:
		return stringAttribute(m, MapName, spec)
	case TypeMapStatus:
		status, err := toBool(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		return NewSetMapStatus(m, status), nil
	case TypeMapSize:
		size, err := toInts(spec.Type, spec.Value, 2)
		if err != nil {
			return nil, err
		}
		return NewSetMapSize(m, size[0], size[1]), nil
	case TypeMapMaxSize:
		return intAttribute(m, MapMaxSize, spec)
	case TypeMapUnits:
		str, err := toString(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		units, err := mapfile.ParseUnits(str)
		if err != nil {
			return nil, err
		}
		return NewSetMapUnits(m, units), nil
	case TypeMapExtent:
		values, err := toFloat64s(spec.Type, spec.Value, 4)
		if err != nil {
			return nil, err
		}
		return NewSetMapExtent(m, mapfile.Extent{MinX: values[0], MinY: values[1], MaxX: values[2], MaxY: values[3]}), nil
	case TypeMapProjection:
		params, err := toStrings(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		return NewSetMapProjection(m, mapfile.NewProjection(params...)), nil
	case TypeMapResolution:
		return floatAttribute(m, MapResolution, spec)
	case TypeMapDefResolution:
		return floatAttribute(m, MapDefResolution, spec)
	case TypeMapDebug:
		return intAttribute(m, MapDebug, spec)
	case TypeMapAngle:
		return floatAttribute(m, MapAngle, spec)
	case TypeMapShapePath:
		return stringAttribute(m, MapShapePath, spec)
	case TypeMapFontSet:
		return stringAttribute(m, MapFontSet, spec)
	case TypeMapSymbolSet:
		return stringAttribute(m, MapSymbolSet, spec)
	case TypeMapTemplatePattern:
		return stringAttribute(m, MapTemplatePattern, spec)
	case TypeMapDataPattern:
		return stringAttribute(m, MapDataPattern, spec)
	case TypeMapImageType:
		return stringAttribute(m, MapImageType, spec)
	case TypeMapImageColor:
		c, err := toColor(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		return NewSetMapImageColor(m, c), nil
	case TypeMapMetadata, TypeMapConfig:
		if spec.Key == "" {
			return nil, &merrors.ErrMissingRequiredParameter{Name: "key"}
		}
		str, err := toString(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		if t == TypeMapMetadata {
			return NewSetMapMetadata(m, spec.Key, str), nil
		}
		return NewSetConfigOption(m, spec.Key, str), nil
	}
	return nil, &merrors.ErrUnknownCommand{Type: spec.Type}
}

func toColor(name string, value interface{}) (*mapfile.Color, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return mapfile.ParseHexColor(v)
	}
	rgb, err := toInts(name, value, 3)
	if err != nil {
		return nil, err
	}
	return &mapfile.Color{Red: rgb[0], Green: rgb[1], Blue: rgb[2]}, nil
}

func layerString(m *mapfile.Map, attribute *LayerAttribute[string], spec Spec) (Command, error) {
	str, err := toString(spec.Type, spec.Value)
	if err != nil {
		return nil, err
	}
	return toCommand(NewSetLayerAttribute(attribute, m, spec.Layer, str))
}

func layerInt(m *mapfile.Map, attribute *LayerAttribute[int], spec Spec) (Command, error) {
	i, err := toInt(spec.Type, spec.Value)
	if err != nil {
		return nil, err
	}
	return toCommand(NewSetLayerAttribute(attribute, m, spec.Layer, i))
}

func layerFloat(m *mapfile.Map, attribute *LayerAttribute[float64], spec Spec) (Command, error) {
	f, err := toFloat64(spec.Type, spec.Value)
	if err != nil {
		return nil, err
	}
	return toCommand(NewSetLayerAttribute(attribute, m, spec.Layer, f))
}

func buildLayerCommand(m *mapfile.Map, t string, spec Spec) (Command, error) {
	switch t {
	case TypeLayerAdd:
		layerType := mapfile.LayerTypePolygon
		if spec.Value != nil {
			str, err := toString(spec.Type, spec.Value)
			if err != nil {
				return nil, err
			}
			layerType, err = mapfile.ParseLayerType(str)
			if err != nil {
				return nil, err
			}
		}
		return NewAddLayer(m, mapfile.NewLayer(spec.Layer, layerType)), nil
	case TypeLayerRemove:
		return toCommand(NewRemoveLayer(m, spec.Layer))
	case TypeLayerRename:
		str, err := toString(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		return toCommand(NewRenameLayer(m, spec.Layer, str))
	case TypeLayerMove:
		i, err := toInt(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		return toCommand(NewMoveLayer(m, spec.Layer, i))
	case TypeLayerType:
		str, err := toString(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		layerType, err := mapfile.ParseLayerType(str)
		if err != nil {
			return nil, err
		}
		return toCommand(NewSetLayerAttribute(LayerType, m, spec.Layer, layerType))
	case TypeLayerStatus:
		str, err := toString(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		status, err := mapfile.ParseStatus(str)
		if err != nil {
			return nil, err
		}
		return NewSetLayerStatus(m, spec.Layer, status)
	case TypeLayerRequires:
		return layerString(m, LayerRequires, spec)
	case TypeLayerMask:
		return layerString(m, LayerMask, spec)
	case TypeLayerOpacity:
		return layerInt(m, LayerOpacity, spec)
	case TypeLayerGroup:
		return layerString(m, LayerGroup, spec)
	case TypeLayerDebug:
		return layerInt(m, LayerDebug, spec)
	case TypeLayerMinScaleDenom:
		return layerFloat(m, LayerMinScaleDenom, spec)
	case TypeLayerMaxScaleDenom:
		return layerFloat(m, LayerMaxScaleDenom, spec)
	case TypeLayerTemplate:
		return layerString(m, LayerTemplate, spec)
	case TypeLayerHeader:
		return layerString(m, LayerHeader, spec)
	case TypeLayerFooter:
		return layerString(m, LayerFooter, spec)
	case TypeLayerData:
		return layerString(m, LayerData, spec)
	case TypeLayerMetadata:
		if spec.Key == "" {
			return nil, &merrors.ErrMissingRequiredParameter{Name: "key"}
		}
		str, err := toString(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		return toCommand(NewSetLayerMetadata(m, spec.Layer, spec.Key, str))
	}
	return nil, &merrors.ErrUnknownCommand{Type: spec.Type}
}

func buildOutputFormatCommand(m *mapfile.Map, t string, spec Spec) (Command, error) {
	switch t {
	case TypeOutputFormatAdd:
		if spec.OutputFormat == nil {
			return nil, &merrors.ErrMissingRequiredParameter{Name: "outputformat"}
		}
		f, err := spec.OutputFormat.OutputFormat()
		if err != nil {
			return nil, err
		}
		return NewAddOutputFormat(m, f), nil
	}
	if spec.Format == "" {
		return nil, &merrors.ErrMissingRequiredParameter{Name: "format"}
	}
	switch t {
	case TypeOutputFormatRemove:
		return toCommand(NewRemoveOutputFormat(m, spec.Format))
	case TypeOutputFormatUpdate:
		if spec.OutputFormat == nil {
			return nil, &merrors.ErrMissingRequiredParameter{Name: "outputformat"}
		}
		return toCommand(NewUpdateOutputFormat(m, spec.Format, *spec.OutputFormat))
	case TypeOutputFormatOption:
		if spec.Key == "" {
			return nil, &merrors.ErrMissingRequiredParameter{Name: "key"}
		}
		str, err := toString(spec.Type, spec.Value)
		if err != nil {
			return nil, err
		}
		return toCommand(NewSetFormatOption(m, spec.Format, spec.Key, str))
	}
	return nil, &merrors.ErrUnknownCommand{Type: spec.Type}
}

// toCommand avoids returning a non-nil interface holding a nil pointer.
func toCommand[C Command](c C, err error) (Command, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
