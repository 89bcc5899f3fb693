// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryString(t *testing.T) {
	qs := NewQueryString(httptest.NewRequest("GET", "/documents/a/image.png?width=500&pretty&height=x", nil))

	width, err := qs.FirstInt("width")
	require.NoError(t, err)
	assert.Equal(t, 500, width)

	pretty, err := qs.FirstBool("pretty")
	require.NoError(t, err)
	assert.True(t, pretty)

	_, err = qs.FirstInt("height")
	assert.Error(t, err)

	_, err = qs.FirstString("missing")
	assert.IsType(t, &ErrQueryStringParameterMissing{}, err)

	i, err := qs.IntOrDefault("missing", 300)
	require.NoError(t, err)
	assert.Equal(t, 300, i)
	_, err = qs.IntOrDefault("height", 300)
	assert.Error(t, err)
}

func TestRequests(t *testing.T) {
	assert.Equal(t, "cache hit for key abc", CacheRequest{Key: "abc", Hit: true}.String())
	assert.Equal(t, map[string]interface{}{"key": "abc", "hit": false}, CacheRequest{Key: "abc"}.Map())

	rr := RenderRequest{Document: "a", Width: 10, Height: 20, Format: "png", Length: 99}
	assert.Equal(t, "rendered document a at 10 x 20 as png (99 bytes)", rr.String())
	rr.Message = "boom"
	assert.Equal(t, "boom", rr.Map()["error"])
}
