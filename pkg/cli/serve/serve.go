// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/spatialcurrent/go-mapfile/pkg/cache"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/logging"
	"github.com/spatialcurrent/go-mapfile/pkg/cli/runtime"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/document"
	"github.com/spatialcurrent/go-mapfile/pkg/journal"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/request"
	"github.com/spatialcurrent/go-mapfile/pkg/util"
)

const (
	CliUse       = "serve"
	CliShort     = "serve the mapfile editing api"
	CliLong      = "serve the mapfile editing api.  Documents are opened with POST /documents.json and edited with command specs."
	SilenceUsage = true
)

const (
	FlagCacheDefaultExpiration = "cache-default-expiration"
	FlagCacheCleanupInterval   = "cache-cleanup-interval"
	FlagSessionExpiration      = "session-expiration"
	FlagJournalPath            = "journal-path"
	FlagLogRequestsCache       = "log-requests-cache"
	FlagLogRequestsRender      = "log-requests-render"
	FlagRenderer               = "renderer"
	FlagRendererDir            = "renderer-dir"
	FlagHighlightStyle         = "highlight-style"
	FlagOpen                   = "open"

	DefaultCacheDefaultExpiration = time.Minute * 5
	DefaultCacheCleanupInterval   = time.Minute * 10
	DefaultSessionExpiration      = time.Hour
	DefaultJournalPath            = journal.Memory
)

func serveFunction(gitBranch string, gitCommit string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {

		//
		// Viper
		//

		v, err := config.NewViper(cmd.Flags())
		if err != nil {
			return err
		}

		verbose := v.GetBool(logging.FlagVerbose)

		if verbose {
			util.PrintViperSettings(os.Stdout, v)
		}

		//
		// Check Configuration
		//

		err = CheckServeConfig(v, args)
		if err != nil {
			return errors.Wrap(err, "error with configuration")
		}

		serveConfig := config.NewServeConfig()
		config.LoadConfigFromViper(serveConfig, v)

		if verbose {
			err = config.PrintConfig(os.Stdout, serveConfig)
			if err != nil {
				return err
			}
		}

		//
		// Runtime
		//

		runtimeMaxProcs := v.GetInt(runtime.FlagRuntimeMaxProcs)

		if runtimeMaxProcs == 0 {
			// 0 indicates that the number of max procs should be set to the number of cpus.
			runtimeMaxProcs = runtime.NumCPU()
		}

		runtime.GOMAXPROCS(runtimeMaxProcs)

		logger, err := logging.NewLoggerFromViper(v)
		if err != nil {
			return errors.Wrap(err, "error creating logger")
		}

		logger.Info(map[string]interface{}{
			"msg":      "maximum number of parallel processes",
			"maxProcs": runtimeMaxProcs,
		})

		//
		// Renderer
		//

		renderer, err := render.New(serveConfig.Render.Renderer, serveConfig.Render.Dir)
		if err != nil {
			logger.Fatal(errors.Wrap(err, "error creating renderer"))
		}

		//
		// Journal
		//

		j, err := journal.Open(context.Background(), serveConfig.JournalPath)
		if err != nil {
			logger.Fatal(errors.Wrap(err, "error opening journal"))
		}
		defer j.Close() // #nosec

		messages := make(chan interface{}, 10000)
		logger.ListenInfo(messages, nil)

		errorsChannel := make(chan interface{}, 10000)
		requests := make(chan request.Request, 10000)

		//
		// Router
		//

		handler, err := NewRouter(&NewRouterInput{
			Viper:         v,
			Config:        serveConfig,
			Logger:        logger,
			Journal:       j,
			Renderer:      renderer,
			Cache:         cache.New(serveConfig.CacheDefaultExpiration, serveConfig.CacheCleanupInterval),
			ErrorsChannel: errorsChannel,
			Requests:      requests,
			Messages:      messages,
			GitBranch:     gitBranch,
			GitCommit:     gitCommit,
		})
		if err != nil {
			logger.Fatal(errors.Wrap(err, "error creating new router"))
		}

		for _, path := range serveConfig.Open {
			d, err := document.Load(path)
			if err != nil {
				logger.Fatal(errors.Wrapf(err, "error opening document %q", path))
			}
			s := handler.Registry.Add(d)
			logger.Info(map[string]interface{}{"msg": "opened document", "id": s.Id, "path": path})
		}

		logger.Info(map[string]interface{}{
			"msg":                  "configuring server",
			"address":              serveConfig.Address,
			"httpTimeoutIdle":      serveConfig.TimeoutIdle,
			"httpTimeoutRead":      serveConfig.TimeoutRead,
			"httpTimeoutWrite":     serveConfig.TimeoutWrite,
			"gracefulShutdown":     serveConfig.GracefulShutdown,
			"gracefulShutdownWait": serveConfig.GracefulShutdownWait,
			"renderer":             serveConfig.Render.Renderer,
			"journal":              serveConfig.JournalPath,
		})

		srv := &http.Server{
			Addr:         serveConfig.Address,
			IdleTimeout:  serveConfig.TimeoutIdle,
			ReadTimeout:  serveConfig.TimeoutRead,
			WriteTimeout: serveConfig.TimeoutWrite,
			Handler:      handler,
		}

		logger.Flush()

		if serveConfig.GracefulShutdown {
			go func() {
				logger.Info("starting server with graceful shutdown")
				logger.InfoF("listening on %s", srv.Addr)
				logger.Flush()
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					fmt.Fprintln(os.Stderr, err) // #nosec
					os.Exit(1)
				}
			}()

			c := make(chan os.Signal, 1)
			signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
			<-c
			ctx, cancel := context.WithTimeout(context.Background(), serveConfig.GracefulShutdownWait)
			defer cancel()
			err := srv.Shutdown(ctx)
			logger.Info("received signal for graceful shutdown of server")
			logger.Close()
			if err != nil {
				return errors.Wrap(err, "error shutting down server")
			}
			return nil
		}

		logger.Info("starting server without graceful shutdown")
		logger.InfoF("listening on %s", srv.Addr)
		logger.Flush()
		logger.Fatal(srv.ListenAndServe())

		return nil
	}
}
