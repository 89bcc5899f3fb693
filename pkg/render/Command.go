// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/serializer"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

// Command renders a map with an external MapServer utility, such as map2img or shp2img.
// The map is written to a temporary mapfile in Dir, so relative paths in the map resolve as they would
// for the original file.  If Dir is blank, the system temporary directory is used.
type Command struct {
	Executable string
	Args       []string
	Dir        string
}

func NewCommand(executable string, dir string) *Command {
	return &Command{Executable: executable, Dir: dir}
}

func (c *Command) Render(ctx context.Context, m *mapfile.Map, width int, height int) ([]byte, error) {
	name := filepath.Base(c.Executable)

	width, height, err := Size(m, width, height)
	if err != nil {
		return nil, err
	}

	tmp, err := ioutil.TempDir("", "mapfile-render-")
	if err != nil {
		return nil, errors.Wrap(err, "error creating temporary directory")
	}
	defer os.RemoveAll(tmp) // #nosec

	mapDir := tmp
	if len(c.Dir) > 0 {
		mapDir = c.Dir
	}
	f, err := ioutil.TempFile(mapDir, ".render-*.map")
	if err != nil {
		return nil, errors.Wrapf(err, "error creating temporary mapfile in %q", mapDir)
	}
	mapPath := f.Name()
	f.Close() // #nosec
	defer os.Remove(mapPath) // #nosec

	err = serializer.WriteFile(&serializer.WriteFileInput{Uri: mapPath, Map: m})
	if err != nil {
		return nil, errors.Wrapf(err, "error writing temporary mapfile %q", mapPath)
	}

	outPath := filepath.Join(tmp, "image."+Format(m).Extension)

	args := append([]string{"-m", mapPath, "-o", outPath, "-s", strconv.Itoa(width), strconv.Itoa(height)}, c.Args...)
	cmd := exec.CommandContext(ctx, c.Executable, args...) // #nosec
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		message := strings.TrimSpace(stderr.String())
		if len(message) == 0 {
			message = err.Error()
		}
		return nil, &merrors.ErrRender{Renderer: name, Message: message}
	}

	b, err := ioutil.ReadFile(outPath) // #nosec
	if err != nil {
		return nil, &merrors.ErrRender{Renderer: name, Message: "no image was written: " + err.Error()}
	}
	return b, nil
}
