// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package commands

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/spatialcurrent/go-mapfile/pkg/mapfile"
)

// Group applies commands in order and reverts them in reverse order.
// If a command fails, the commands already applied are reverted, so the group applies entirely or not at all.
type Group struct {
	description string
	commands    []Command
}

func NewGroup(description string, commands ...Command) *Group {
	return &Group{description: description, commands: append(make([]Command, 0, len(commands)), commands...)}
}

// Commands returns the commands of the group.
func (g *Group) Commands() []Command {
	return append(make([]Command, 0, len(g.commands)), g.commands...)
}

func (g *Group) Apply(m *mapfile.Map) error {
	for i, c := range g.commands {
		if err := c.Apply(m); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = g.commands[j].Revert(m)
			}
			return errors.Wrapf(err, "error applying command %q", c.Description())
		}
	}
	return nil
}

func (g *Group) Revert(m *mapfile.Map) error {
	for i := len(g.commands) - 1; i >= 0; i-- {
		if err := g.commands[i].Revert(m); err != nil {
			for j := i + 1; j < len(g.commands); j++ {
				_ = g.commands[j].Apply(m)
			}
			return errors.Wrapf(err, "error reverting command %q", g.commands[i].Description())
		}
	}
	return nil
}

func (g *Group) Description() string {
	if g.description != "" {
		return g.description
	}
	descriptions := make([]string, 0, len(g.commands))
	for _, c := range g.commands {
		descriptions = append(descriptions, c.Description())
	}
	return strings.Join(descriptions, "; ")
}
