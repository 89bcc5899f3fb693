// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package logger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultFormat = "tags"
)

// Formats are the supported message formats.
var Formats = []string{"json", "tags", "yaml"}

// Format serializes the message as a single line.
func Format(m map[string]interface{}, format string) (string, error) {
	switch format {
	case "json":
		b, err := json.Marshal(m)
		if err != nil {
			return "", errors.Wrap(err, "error serializing message as json")
		}
		return string(b), nil
	case "yaml":
		b, err := yaml.Marshal(m)
		if err != nil {
			return "", errors.Wrap(err, "error serializing message as yaml")
		}
		return "---\n" + strings.TrimRight(string(b), "\n"), nil
	case "tags", "":
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tags := make([]string, 0, len(keys))
		for _, k := range keys {
			tags = append(tags, k+"="+formatTag(m[k]))
		}
		return strings.Join(tags, " "), nil
	}
	return "", errors.Errorf("unknown log format %q, expecting one of %v", format, Formats)
}

func formatTag(value interface{}) string {
	str := fmt.Sprint(value)
	if strings.ContainsAny(str, " \t\"=") || len(str) == 0 {
		return fmt.Sprintf("%q", str)
	}
	return str
}
