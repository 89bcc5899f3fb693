// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package main

import (
	"fmt"
	"os"

	"github.com/spatialcurrent/go-mapfile/pkg/cli"
)

var gitBranch string
var gitCommit string

func main() {
	if err := cli.Execute(gitBranch, gitCommit); err != nil {
		fmt.Fprintln(os.Stderr, err.Error()) // #nosec
		os.Exit(1)
	}
}
