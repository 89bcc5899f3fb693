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
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"

	"github.com/spatialcurrent/go-mapfile/pkg/geo"
	"github.com/spatialcurrent/go-mapfile/pkg/img"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

const (
	PreviewName = "preview"
)

var (
	DefaultBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DefaultGridColor  = color.RGBA{R: 192, G: 192, B: 192, A: 255}
)

// Preview draws a schematic of the map without reading any data.
// Each visible layer in scale is drawn as a band over a graticule of the map extent.
type Preview struct {
	Graticule bool
	GridColor color.Color
}

func NewPreview() *Preview {
	return &Preview{Graticule: true, GridColor: DefaultGridColor}
}

func (p *Preview) Render(ctx context.Context, m *mapfile.Map, width int, height int) ([]byte, error) {
	width, height, err := Size(m, width, height)
	if err != nil {
		return nil, err
	}

	format := Format(m)

	background := DefaultBackground
	if c := m.ImageColor(); c != nil {
		background = c.RGBA()
	}
	if format.Transparent {
		background = color.RGBA{}
	}

	canvas := img.CreateImage(width, height, background)

	layers := visibleLayers(m, width)
	if len(layers) > 0 {
		band := height / len(layers)
		if band == 0 {
			band = 1
		}
		for i, l := range layers {
			if err := ctx.Err(); err != nil {
				return nil, &merrors.ErrRender{Renderer: PreviewName, Message: err.Error()}
			}
			rect := image.Rect(0, i*band, width, (i+1)*band)
			if i == len(layers)-1 {
				rect.Max.Y = height
			}
			mask := &image.Uniform{C: color.Alpha{A: uint8(l.Opacity() * 255 / 100)}}
			draw.DrawMask(canvas, rect, &image.Uniform{C: layerColor(l.Name())}, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}

	if p.Graticule {
		p.drawGraticule(canvas, m)
	}

	if err := ctx.Err(); err != nil {
		return nil, &merrors.ErrRender{Renderer: PreviewName, Message: err.Error()}
	}

	buf := new(bytes.Buffer)
	if err := img.EncodeImage(buf, format.Extension, canvas); err != nil {
		return nil, &merrors.ErrRender{Renderer: PreviewName, Message: err.Error()}
	}
	return buf.Bytes(), nil
}

// visibleLayers returns the layers that are switched on and in scale.
// The scale check is skipped if the map has no usable extent.
func visibleLayers(m *mapfile.Map, width int) []*mapfile.Layer {
	scale := 0.0
	if e := m.Extent(); e.Valid() {
		scale = geo.ScaleDenominator(e.Width(), width, mapfile.InchesPerUnit[m.Units()], m.Resolution())
	}
	layers := make([]*mapfile.Layer, 0)
	for _, l := range m.Layers() {
		if !l.Visible() {
			continue
		}
		if scale > 0 && !l.InScale(scale) {
			continue
		}
		layers = append(layers, l)
	}
	return layers
}

func layerColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 255}
}

func (p *Preview) drawGraticule(canvas *image.RGBA, m *mapfile.Map) {
	e := m.Extent()
	if !e.Valid() {
		return
	}
	gridColor := p.GridColor
	if gridColor == nil {
		gridColor = DefaultGridColor
	}

	var xs, ys []float64
	if m.Units() == mapfile.UnitsDD {
		xs, ys = geo.Graticule(e.MinX, e.MinY, e.MaxX, e.MaxY, geo.GraticuleZoom(e.Width(), 4))
	} else {
		for i := 1; i < 4; i++ {
			xs = append(xs, e.MinX+e.Width()*float64(i)/4)
			ys = append(ys, e.MinY+e.Height()*float64(i)/4)
		}
	}

	b := canvas.Bounds()
	for _, x := range xs {
		px := int((x - e.MinX) / e.Width() * float64(b.Dx()-1))
		for py := b.Min.Y; py < b.Max.Y; py++ {
			canvas.Set(px, py, gridColor)
		}
	}
	for _, y := range ys {
		py := int((e.MaxY - y) / e.Height() * float64(b.Dy()-1))
		for px := b.Min.X; px < b.Max.X; px++ {
			canvas.Set(px, py, gridColor)
		}
	}
}
