// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package config

import (
	"time"
)

type Serve struct {
	Address                string        `viper:"http-address" map:"Address"`
	TimeoutIdle            time.Duration `viper:"http-timeout-idle" map:"TimeoutIdle"`
	TimeoutRead            time.Duration `viper:"http-timeout-read" map:"TimeoutRead"`
	TimeoutWrite           time.Duration `viper:"http-timeout-write" map:"TimeoutWrite"`
	GracefulShutdown       bool          `viper:"http-graceful-shutdown" map:"GracefulShutdown"`
	GracefulShutdownWait   time.Duration `viper:"http-graceful-shutdown-wait" map:"GracefulShutdownWait"`
	CacheDefaultExpiration time.Duration `viper:"cache-default-expiration" map:"CacheDefaultExpiration"`
	CacheCleanupInterval   time.Duration `viper:"cache-cleanup-interval" map:"CacheCleanupInterval"`
	SessionExpiration      time.Duration `viper:"session-expiration" map:"SessionExpiration"`
	JournalPath            string        `viper:"journal-path" map:"JournalPath"`
	LogRequestsCache       bool          `viper:"log-requests-cache" map:"LogRequestsCache"`
	LogRequestsRender      bool          `viper:"log-requests-render" map:"LogRequestsRender"`
	Open                   []string      `viper:"open" map:"Open"`
	Render                 *Render
}

func NewServeConfig() *Serve {
	return &Serve{
		Render: &Render{},
	}
}

func (s Serve) Map() map[string]interface{} {
	m := map[string]interface{}{
		"Address":                s.Address,
		"TimeoutIdle":            s.TimeoutIdle.String(),
		"TimeoutRead":            s.TimeoutRead.String(),
		"TimeoutWrite":           s.TimeoutWrite.String(),
		"GracefulShutdown":       s.GracefulShutdown,
		"GracefulShutdownWait":   s.GracefulShutdownWait.String(),
		"CacheDefaultExpiration": s.CacheDefaultExpiration.String(),
		"CacheCleanupInterval":   s.CacheCleanupInterval.String(),
		"SessionExpiration":      s.SessionExpiration.String(),
		"JournalPath":            s.JournalPath,
		"LogRequestsCache":       s.LogRequestsCache,
		"LogRequestsRender":      s.LogRequestsRender,
		"Open":                   s.Open,
	}
	if s.Render != nil {
		m["Render"] = s.Render.Map()
	}
	return m
}
