// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

// Package journal records the commands applied to documents in a SQLite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const (
	ActionOpen   = "open"
	ActionApply  = "apply"
	ActionRevert = "revert"
	ActionSave   = "save"

	Memory = ":memory:"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  document TEXT NOT NULL,
  action TEXT NOT NULL,
  description TEXT NOT NULL,
  body TEXT NOT NULL DEFAULT '',
  created INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS entries_document ON entries (document, id);
`

// Entry is one recorded action on a document.
type Entry struct {
	ID          int64     `json:"id" yaml:"id"`
	Document    string    `json:"document" yaml:"document"`
	Action      string    `json:"action" yaml:"action"`
	Description string    `json:"description" yaml:"description"`
	Body        string    `json:"body,omitempty" yaml:"body,omitempty"`
	Created     time.Time `json:"created" yaml:"created"`
}

type Journal struct {
	db *sql.DB
}

func New(db *sql.DB) *Journal {
	return &Journal{db: db}
}

// Open opens the journal database at the path, creating it if needed.  Use Memory for an in-memory journal.
func Open(ctx context.Context, path string) (*Journal, error) {
	dsn := "file::memory:"
	if path != Memory {
		p, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "error expanding path %q", path)
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, errors.Wrapf(err, "error creating directory for journal %q", path)
		}
		dsn = fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", p)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening journal %q", path)
	}
	db.SetMaxOpenConns(1)
	j := New(db)
	if err := j.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

// Init creates the tables.
func (j *Journal) Init(ctx context.Context) error {
	if _, err := j.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "error creating journal tables")
	}
	return nil
}

// Append records the entry and sets its id and creation time.
func (j *Journal) Append(ctx context.Context, e *Entry) error {
	if e.Created.IsZero() {
		e.Created = time.Now().UTC()
	}
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO entries (document, action, description, body, created) VALUES (?, ?, ?, ?, ?)`,
		e.Document, e.Action, e.Description, e.Body, e.Created.UnixNano(),
	)
	if err != nil {
		return errors.Wrapf(err, "error appending entry for document %q", e.Document)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "error retrieving entry id")
	}
	e.ID = id
	return nil
}

// List returns the entries for the document, oldest first.
func (j *Journal) List(ctx context.Context, document string) ([]*Entry, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, document, action, description, body, created FROM entries WHERE document = ? ORDER BY id`,
		document,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "error listing entries for document %q", document)
	}
	defer rows.Close()
	entries := make([]*Entry, 0)
	for rows.Next() {
		e := &Entry{}
		var created int64
		if err := rows.Scan(&e.ID, &e.Document, &e.Action, &e.Description, &e.Body, &created); err != nil {
			return nil, errors.Wrap(err, "error scanning entry")
		}
		e.Created = time.Unix(0, created).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating entries")
	}
	return entries, nil
}

// Delete removes the entries for the document and returns the number removed.
func (j *Journal) Delete(ctx context.Context, document string) (int64, error) {
	res, err := j.db.ExecContext(ctx, `DELETE FROM entries WHERE document = ?`, document)
	if err != nil {
		return 0, errors.Wrapf(err, "error deleting entries for document %q", document)
	}
	return res.RowsAffected()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
