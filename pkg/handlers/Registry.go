// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package handlers

import (
	"sort"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/spatialcurrent/go-mapfile/pkg/document"

	merrors "github.com/spatialcurrent/go-mapfile/pkg/errors"
)

const (
	TypeNameDocument = "document"
)

// Registry holds the open sessions.  A session expires when it was not accessed for the expiration duration.
type Registry struct {
	cache      *gocache.Cache
	expiration time.Duration
}

func NewRegistry(expiration time.Duration, cleanupInterval time.Duration) *Registry {
	return &Registry{
		cache:      gocache.New(expiration, cleanupInterval),
		expiration: expiration,
	}
}

// Add registers the document under a new random id.
func (r *Registry) Add(d *document.Document) *Session {
	s := NewSession(uuid.New().String(), d)
	r.cache.Set(s.Id, s, gocache.DefaultExpiration)
	return s
}

// Get returns the session and extends its expiration.
func (r *Registry) Get(id string) (*Session, error) {
	obj, found := r.cache.Get(id)
	if !found {
		return nil, &merrors.ErrMissingObject{Type: TypeNameDocument, Name: id}
	}
	s, ok := obj.(*Session)
	if !ok {
		return nil, &merrors.ErrMissingObject{Type: TypeNameDocument, Name: id}
	}
	r.cache.Set(id, s, gocache.DefaultExpiration)
	return s, nil
}

func (r *Registry) Delete(id string) bool {
	if _, found := r.cache.Get(id); !found {
		return false
	}
	r.cache.Delete(id)
	return true
}

func (r *Registry) Count() int {
	return r.cache.ItemCount()
}

// List returns the open sessions, oldest first.
func (r *Registry) List() []*Session {
	sessions := make([]*Session, 0, r.cache.ItemCount())
	for _, item := range r.cache.Items() {
		if s, ok := item.Object.(*Session); ok {
			sessions = append(sessions, s)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].Created.Equal(sessions[j].Created) {
			return sessions[i].Id < sessions[j].Id
		}
		return sessions[i].Created.Before(sessions[j].Created)
	})
	return sessions
}
