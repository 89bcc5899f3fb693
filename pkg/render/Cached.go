// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package render

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/cache"
	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
	"github.com/spatialcurrent/go-mapfile/pkg/serializer"
)

// Cached wraps a renderer with a cache keyed by the serialized map and the image size.
type Cached struct {
	Renderer Renderer
	Cache    *cache.Cache
}

func NewCached(r Renderer, c *cache.Cache) *Cached {
	return &Cached{Renderer: r, Cache: c}
}

// Key returns the cache key for rendering the map at the given size.
func Key(m *mapfile.Map, width int, height int) string {
	sum := sha256.Sum256(serializer.Serialize(m))
	return fmt.Sprintf("%s:%dx%d", hex.EncodeToString(sum[:]), width, height)
}

func (c *Cached) Render(ctx context.Context, m *mapfile.Map, width int, height int) ([]byte, error) {
	_, b, err := c.Cache.Get(Key(m, width, height), func() ([]byte, error) {
		return c.Renderer.Render(ctx, m, width, height)
	})
	if err != nil {
		return nil, errors.Cause(err)
	}
	return b, nil
}
