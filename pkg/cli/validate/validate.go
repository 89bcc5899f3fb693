// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package validate

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/logging"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/parser"
	"github.com/spatialcurrent/go-mapfile/pkg/util"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

const (
	CliUse       = "validate MAPFILE [MAPFILE...]"
	CliShort     = "validate mapfiles"
	CliLong      = "parse each mapfile and report syntax errors and references to missing layers"
	SilenceUsage = true
)

const (
	FlagStrict = "strict"
)

// Result is the outcome of validating one mapfile.
type Result struct {
	Path     string
	Map      *mapfile.Map
	Error    error
	Warnings []*merrors.WarnDanglingReference
}

// Validate parses the mapfiles concurrently, one map per goroutine.  Results are in the order of the paths.
func Validate(ctx context.Context, paths []string) []*Result {
	results := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			r := &Result{Path: path}
			results[i] = r
			if err := ctx.Err(); err != nil {
				r.Error = err
				return nil
			}
			m, err := parser.ParseFile(path)
			if err != nil {
				r.Error = err
				return nil
			}
			r.Map = m
			r.Warnings = m.DanglingReferences()
			return nil
		})
	}
	_ = g.Wait() // goroutines record their errors in the results
	return results
}

func validateFunction(cmd *cobra.Command, args []string) error {

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}

	if v.GetBool(logging.FlagVerbose) {
		util.PrintViperSettings(os.Stdout, v)
	}

	err = logging.CheckLoggingConfig(v)
	if err != nil {
		return errors.Wrap(err, "error with logging configuration")
	}

	logger, err := logging.NewLoggerFromViper(v)
	if err != nil {
		return errors.Wrap(err, "error creating logger")
	}
	defer logger.Close()

	strict := v.GetBool(FlagStrict)

	invalid := 0
	for _, r := range Validate(context.Background(), args) {
		if r.Error != nil {
			invalid++
			logger.Error(map[string]interface{}{"msg": "invalid mapfile", "path": r.Path, "error": r.Error.Error()})
			continue
		}
		for _, w := range r.Warnings {
			logger.Warn(map[string]interface{}{"msg": w.Error(), "path": r.Path, "layer": w.Layer, "attribute": w.Attribute, "target": w.Target})
		}
		if strict && len(r.Warnings) > 0 {
			invalid++
			continue
		}
		logger.Info(map[string]interface{}{
			"msg":           "valid mapfile",
			"path":          r.Path,
			"name":          r.Map.Name(),
			"layers":        len(r.Map.Layers()),
			"outputformats": len(r.Map.OutputFormats()),
		})
	}
	logger.Flush()

	if invalid > 0 {
		return errors.Errorf("%d of %d mapfiles are invalid", invalid, len(args))
	}
	return nil
}
