// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package request

import (
	"fmt"
)

type RenderRequest struct {
	Document string
	Width    int
	Height   int
	Format   string
	Length   int
	Message  string
}

func (rr RenderRequest) String() string {
	if len(rr.Message) > 0 {
		return fmt.Sprintf("render of document %s at %d x %d failed: %s", rr.Document, rr.Width, rr.Height, rr.Message)
	}
	return fmt.Sprintf("rendered document %s at %d x %d as %s (%d bytes)", rr.Document, rr.Width, rr.Height, rr.Format, rr.Length)
}

func (rr RenderRequest) Map() map[string]interface{} {
	m := map[string]interface{}{
		"document": rr.Document,
		"width":    rr.Width,
		"height":   rr.Height,
		"format":   rr.Format,
		"length":   rr.Length,
	}
	if len(rr.Message) > 0 {
		m["error"] = rr.Message
	}
	return m
}
