// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/viper"
)

// PrintViperSettings writes the settings as sorted key=value lines.
func PrintViperSettings(w io.Writer, v *viper.Viper) {
	fmt.Fprintln(w, "=================================================") // #nosec
	fmt.Fprintln(w, "Viper:")                                            // #nosec
	fmt.Fprintln(w, "-------------------------------------------------") // #nosec
	keys := v.AllKeys()
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s=%v\n", key, v.Get(key)) // #nosec
	}
	fmt.Fprintln(w, "=================================================") // #nosec
}
