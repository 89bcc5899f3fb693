// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// The values of a spec are decoded from JSON or YAML, so numbers arrive as float64 or int.

func toString(name string, value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case int, int64, float64, bool:
		return fmt.Sprint(v), nil
	}
	return "", &merrors.ErrInvalidParameter{Name: name, Value: fmt.Sprint(value), Reason: "expecting a string"}
}

func toFloat64(name string, value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, &merrors.ErrInvalidParameter{Name: name, Value: fmt.Sprint(value), Reason: "expecting a number"}
}

func toInt(name string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	case string:
		i, err := strconv.Atoi(v)
		if err == nil {
			return i, nil
		}
	}
	return 0, &merrors.ErrInvalidParameter{Name: name, Value: fmt.Sprint(value), Reason: "expecting an integer"}
}

func toBool(name string, value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToUpper(v) {
		case "ON", "TRUE":
			return true, nil
		case "OFF", "FALSE":
			return false, nil
		}
	}
	return false, &merrors.ErrInvalidParameter{Name: name, Value: fmt.Sprint(value), Reason: "expecting ON or OFF"}
}

func toSlice(name string, value interface{}, n int) ([]interface{}, error) {
	values, ok := value.([]interface{})
	if !ok || (n > 0 && len(values) != n) {
		return nil, &merrors.ErrInvalidParameter{Name: name, Value: fmt.Sprint(value), Reason: fmt.Sprintf("expecting a list of %d values", n)}
	}
	return values, nil
}

func toInts(name string, value interface{}, n int) ([]int, error) {
	values, err := toSlice(name, value, n)
	if err != nil {
		return nil, err
	}
	ints := make([]int, 0, len(values))
	for _, v := range values {
		i, err := toInt(name, v)
		if err != nil {
			return nil, err
		}
		ints = append(ints, i)
	}
	return ints, nil
}

func toFloat64s(name string, value interface{}, n int) ([]float64, error) {
	values, err := toSlice(name, value, n)
	if err != nil {
		return nil, err
	}
	floats := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := toFloat64(name, v)
		if err != nil {
			return nil, err
		}
		floats = append(floats, f)
	}
	return floats, nil
}

// toStrings accepts a single string or a list of strings.
func toStrings(name string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return []string{}, nil
	case string:
		return strings.Fields(v), nil
	case []interface{}:
		strs := make([]string, 0, len(v))
		for _, x := range v {
			str, err := toString(name, x)
			if err != nil {
				return nil, err
			}
			strs = append(strs, str)
		}
		return strs, nil
	}
	return nil, &merrors.ErrInvalidParameter{Name: name, Value: fmt.Sprint(value), Reason: "expecting a string or a list of strings"}
}
