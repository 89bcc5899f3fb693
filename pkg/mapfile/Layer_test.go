// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package mapfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerDefaults(t *testing.T) {
	l := NewLayer("roads", LayerTypeLine)
	assert.Equal(t, StatusOff, l.Status())
	assert.Equal(t, 100, l.Opacity())
	assert.Equal(t, -1.0, l.MinScaleDenom())
	assert.Equal(t, -1.0, l.MaxScaleDenom())
	assert.True(t, l.Type().Vector())
}

func TestLayerOpacity(t *testing.T) {
	l := NewLayer("roads", LayerTypeLine)
	assert.Error(t, l.SetOpacity(101))
	assert.Error(t, l.SetOpacity(-1))
	assert.NoError(t, l.SetOpacity(0))
	assert.Equal(t, 0, l.Opacity())
}

func TestLayerScaleDenom(t *testing.T) {
	l := NewLayer("roads", LayerTypeLine)
	assert.NoError(t, l.SetMaxScaleDenom(1000))
	assert.Error(t, l.SetMinScaleDenom(5000))
	assert.Equal(t, -1.0, l.MinScaleDenom())
	assert.NoError(t, l.SetMinScaleDenom(100))
	assert.Error(t, l.SetMaxScaleDenom(50))
	assert.NoError(t, l.SetMaxScaleDenom(-1))
	assert.NoError(t, l.SetMinScaleDenom(5000))

	assert.False(t, l.InScale(4000))
	assert.True(t, l.InScale(6000))
}

func TestLayerStatus(t *testing.T) {
	l := NewLayer("roads", LayerTypeLine)
	assert.Error(t, l.SetStatus(Status(7)))
	assert.NoError(t, l.SetStatus(StatusDefault))
	assert.True(t, l.Visible())
	assert.Equal(t, "Default", l.Status().Description())
	assert.Equal(t, "DEFAULT", l.Status().String())

	s, err := ParseStatus("on")
	assert.NoError(t, err)
	assert.Equal(t, StatusOn, s)
	_, err = ParseStatus("maybe")
	assert.Error(t, err)
}

func TestLayerCloneEqual(t *testing.T) {
	l := NewLayer("roads", LayerTypeLine)
	l.SetMetadata("wms_title", "Roads")
	l.SetProjection(NewProjection("init=epsg:4326"))
	l.AddProcessing("BANDS=1")
	l.AddExtra(Opaque{Keyword: "CLASS", Text: "CLASS\n  NAME \"a\"\nEND", Line: 3})
	c := l.Clone()
	assert.True(t, l.Equal(c))
	c.AddExtra(Opaque{Keyword: "CLASS", Text: "CLASS END"})
	assert.False(t, l.Equal(c))
	assert.Len(t, l.Extras(), 1)

	x := l.Clone()
	extras := x.extras
	extras[0].Line = 99
	assert.True(t, l.Equal(x), "position is not compared")
}

func TestMetadata(t *testing.T) {
	var md Metadata
	md.Set("b", "2")
	md.Set("a", "1")
	md.Set("b", "3")
	assert.Equal(t, []string{"b", "a"}, md.Keys())
	assert.Equal(t, "3", md.Value("b"))
	assert.True(t, md.Delete("b"))
	assert.False(t, md.Delete("b"))
	assert.Equal(t, 1, md.Len())
	assert.True(t, md.Clone().Equal(&md))
	assert.True(t, NewMetadata().Equal(nil))
}
