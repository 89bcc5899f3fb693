// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type QueryString struct {
	Params map[string][]string
}

func (qs QueryString) FirstString(name string) (string, error) {
	v, ok := qs.Params[name]
	if !ok {
		return "", &ErrQueryStringParameterMissing{Name: name}
	}
	if len(v) == 0 {
		return "", errors.New("query string parameter " + name + " is empty")
	}
	return v[0], nil
}

func (qs QueryString) FirstInt(name string) (int, error) {
	s, err := qs.FirstString(name)
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(err, "query string parameter "+name+" is not an int ("+s+")")
	}
	return i, nil
}

func (qs QueryString) FirstBool(name string) (bool, error) {
	s, err := qs.FirstString(name)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "", "1", "t", "true", "y", "yes":
		return true, nil
	case "0", "f", "false", "n", "no":
		return false, nil
	}
	return false, errors.New("query string parameter " + name + " is not a bool (" + s + ")")
}

// IntOrDefault returns the int value of the parameter, or the default value if the parameter is missing.
func (qs QueryString) IntOrDefault(name string, defaultValue int) (int, error) {
	i, err := qs.FirstInt(name)
	if err != nil {
		if _, ok := errors.Cause(err).(*ErrQueryStringParameterMissing); ok {
			return defaultValue, nil
		}
		return 0, err
	}
	return i, nil
}

func NewQueryString(r *http.Request) QueryString {
	return QueryString{Params: r.URL.Query()}
}
