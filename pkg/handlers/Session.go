// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"sync"
	"time"

	"github.com/spatialcurrent/go-mapfile/pkg/commands"
	"github.com/spatialcurrent/go-mapfile/pkg/document"
)

// Session is a document opened through the api, with the stack of commands that can be undone.
type Session struct {
	Id       string
	Created  time.Time
	Document *document.Document
	mutex    *sync.Mutex
	history  []commands.Command
}

func NewSession(id string, d *document.Document) *Session {
	return &Session{
		Id:       id,
		Created:  time.Now().UTC(),
		Document: d,
		mutex:    &sync.Mutex{},
		history:  make([]commands.Command, 0),
	}
}

// Push records an applied command.
func (s *Session) Push(c commands.Command) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.history = append(s.history, c)
}

// Undo reverts the last applied command and returns it.
func (s *Session) Undo() (commands.Command, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if len(s.history) == 0 {
		return nil, false, nil
	}
	c := s.history[len(s.history)-1]
	if err := s.Document.Revert(c); err != nil {
		return c, true, err
	}
	s.history = s.history[:len(s.history)-1]
	return c, true, nil
}

func (s *Session) Depth() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.history)
}

// Summary returns the document level view of the session.
func (s *Session) Summary() map[string]interface{} {
	d := s.Document
	formats := make([]string, 0)
	for _, f := range d.OutputFormats() {
		formats = append(formats, f.Name())
	}
	return map[string]interface{}{
		"id":            s.Id,
		"created":       s.Created.Format(time.RFC3339),
		"path":          d.Path(),
		"loaded":        d.IsLoaded(),
		"modified":      d.Modified(),
		"name":          d.MapName(),
		"status":        d.MapStatus(),
		"width":         d.MapWidth(),
		"height":        d.MapHeight(),
		"maxsize":       d.MapMaxSize(),
		"units":         string(d.MapUnits()),
		"layers":        d.Layers(),
		"outputformats": formats,
		"undo":          s.Depth(),
	}
}
