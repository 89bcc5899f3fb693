// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal(t *testing.T) {
	ctx := context.Background()
	j, err := Open(ctx, Memory)
	require.NoError(t, err)
	defer j.Close()

	first := &Entry{Document: "a", Action: ActionApply, Description: "Change map name from 'MS' to 'World'"}
	require.NoError(t, j.Append(ctx, first))
	assert.NotZero(t, first.ID)
	assert.False(t, first.Created.IsZero())

	require.NoError(t, j.Append(ctx, &Entry{Document: "b", Action: ActionApply, Description: "Create new layer 'roads'"}))
	require.NoError(t, j.Append(ctx, &Entry{Document: "a", Action: ActionRevert, Description: first.Description}))

	entries, err := j.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionApply, entries[0].Action)
	assert.Equal(t, ActionRevert, entries[1].Action)
	assert.Equal(t, first.Created.UnixNano(), entries[0].Created.UnixNano())

	n, err := j.Delete(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	entries, err = j.List(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJournalFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db", "journal.db")

	j, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, j.Append(ctx, &Entry{Document: "a", Action: ActionSave, Description: "Save", Body: "/tmp/world.map"}))
	require.NoError(t, j.Close())

	j, err = Open(ctx, path)
	require.NoError(t, err)
	defer j.Close()
	entries, err := j.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/tmp/world.map", entries[0].Body)
}
