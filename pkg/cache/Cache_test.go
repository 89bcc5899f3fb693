// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package cache

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	c := NewCache()
	calls := 0
	load := func() ([]byte, error) {
		calls++
		return []byte("abc"), nil
	}
	found, b, err := c.Get("a:1", load)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []byte("abc"), b)

	found, b, err = c.Get("a:1", load)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("abc"), b)
	assert.Equal(t, 1, calls)

	_, _, err = c.Get("b:1", func() ([]byte, error) { return nil, errors.New("failed") })
	assert.Error(t, err)
	assert.Equal(t, 1, c.ItemCount())

	c.Delete("a:")
	assert.Equal(t, 0, c.ItemCount())
}
