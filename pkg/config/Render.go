// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

// Render is the configuration of the renderer used by the render and serve commands.
type Render struct {
	Renderer string `viper:"renderer" map:"Renderer"`
	Dir      string `viper:"renderer-dir" map:"Dir"`
	Width    int    `viper:"width" map:"Width"`
	Height   int    `viper:"height" map:"Height"`
}

func (r Render) Map() map[string]interface{} {
	return map[string]interface{}{
		"Renderer": r.Renderer,
		"Dir":      r.Dir,
		"Width":    r.Width,
		"Height":   r.Height,
	}
}
