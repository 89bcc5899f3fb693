// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package runtime

import (
	"runtime"
)

const (
	FlagRuntimeMaxProcs = "runtime-max-procs"
)

var (
	NumCPU     = runtime.NumCPU
	GOMAXPROCS = runtime.GOMAXPROCS
)
