// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-mapfile/pkg/cli/logging"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/output"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/document"
	"github.com/spatialcurrent/go-mapfile/pkg/img"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/util"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

const (
	CliUse       = "render MAPFILE"
	CliShort     = "render a mapfile to an image"
	CliLong      = "render a mapfile to a png, jpg or gif image.  The image format is the extension of the output uri, or --image-format when writing to stdout."
	SilenceUsage = true
)

const (
	FlagRenderer    = "renderer"
	FlagRendererDir = "renderer-dir"
	FlagWidth       = "width"
	FlagHeight      = "height"
	FlagImageFormat = "image-format"
	FlagTimeout     = "timeout"

	DefaultTimeout = time.Minute
)

func renderFunction(cmd *cobra.Command, args []string) error {

	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}

	if v.GetBool(logging.FlagVerbose) {
		util.PrintViperSettings(os.Stderr, v)
	}

	renderConfig := &config.Render{}
	config.LoadConfigFromViper(renderConfig, v)

	uri := v.GetString(output.FlagOutputURI)
	ext := v.GetString(FlagImageFormat)
	if uri != output.Stdout {
		if _, format := util.SplitNameFormat(uri); len(format) > 0 {
			ext = format
		}
	}
	ext = strings.ToLower(ext)
	if _, ok := img.ContentTypes[ext]; !ok {
		return &merrors.ErrUnknownImageExtension{Extension: ext}
	}

	r, err := render.New(renderConfig.Renderer, renderConfig.Dir)
	if err != nil {
		return err
	}

	d, err := document.Load(args[0])
	if err != nil {
		return errors.Wrapf(err, "error loading mapfile %q", args[0])
	}

	ctx, cancel := context.WithTimeout(context.Background(), v.GetDuration(FlagTimeout))
	defer cancel()

	result := d.Render(ctx, r, renderConfig.Width, renderConfig.Height)
	if !result.OK() {
		return errors.New(result.Message)
	}

	b, err := img.TranscodeImage(result.Buffer, ext)
	if err != nil {
		return err
	}

	return output.Write(&output.OpenInput{
		Uri:       uri,
		Mkdirs:    v.GetBool(output.FlagOutputMkdirs),
		Overwrite: v.GetBool(output.FlagOutputOverwrite),
	}, b)
}

// NewCommand returns a new instance of the render command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          CliUse,
		Short:        CliShort,
		Long:         CliLong,
		Args:         cobra.ExactArgs(1),
		RunE:         renderFunction,
		SilenceUsage: SilenceUsage,
	}
	flag := cmd.Flags()
	output.InitOutputFlags(flag, "", nil)
	flag.String(FlagRenderer, render.PreviewName, "the renderer: "+strings.Join(render.Names, ", "))
	flag.String(FlagRendererDir, "", "the directory for temporary mapfiles written for external renderers")
	flag.Int(FlagWidth, 0, "the image width, defaults to the map size")
	flag.Int(FlagHeight, 0, "the image height, defaults to the map size")
	flag.String(FlagImageFormat, "png", "the image format when writing to stdout: png, jpg or gif")
	flag.Duration(FlagTimeout, DefaultTimeout, "the maximum duration of the render")
	return cmd
}
