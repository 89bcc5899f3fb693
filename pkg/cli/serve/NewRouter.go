// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package serve

import (
	"github.com/spf13/viper"

	"github.com/spatialcurrent/go-mapfile/pkg/cache"
	"github.com/spatialcurrent/go-mapfile/pkg/config"
	"github.com/spatialcurrent/go-mapfile/pkg/handlers"
	"github.com/spatialcurrent/go-mapfile/pkg/journal"
	"github.com/spatialcurrent/go-mapfile/pkg/logger"
	"github.com/spatialcurrent/go-mapfile/pkg/render"
	"github.com/spatialcurrent/go-mapfile/pkg/request"
	"github.com/spatialcurrent/go-mapfile/pkg/router"
)

type NewRouterInput struct {
	Viper         *viper.Viper
	Config        *config.Serve
	Logger        *logger.Logger
	Journal       *journal.Journal
	Renderer      render.Renderer
	Cache         *cache.Cache
	ErrorsChannel chan interface{}
	Requests      chan request.Request
	Messages      chan interface{}
	GitBranch     string
	GitCommit     string
}

func NewRouter(input *NewRouterInput) (*router.MapfileRouter, error) {

	go func(requests chan request.Request, logRequestsCache bool, logRequestsRender bool) {
		for r := range requests {
			switch r.(type) {
			case request.CacheRequest:
				if logRequestsCache {
					input.Messages <- r.Map()
				}
			case request.RenderRequest:
				if logRequestsRender {
					input.Messages <- r.Map()
				}
			}
		}
	}(
		input.Requests,
		input.Config.LogRequestsCache,
		input.Config.LogRequestsRender,
	)

	errorDestination := input.Viper.GetString("error-destination")
	infoDestination := input.Viper.GetString("info-destination")

	if errorDestination == infoDestination {
		go func(errorsChannel chan interface{}) {
			for err := range errorsChannel {
				input.Messages <- err
			}
		}(input.ErrorsChannel)
	} else {
		input.Logger.ListenError(input.ErrorsChannel, nil)
	}

	r := router.NewMapfileRouter(&router.NewMapfileRouterInput{
		Viper:         input.Viper,
		Registry:      handlers.NewRegistry(input.Config.SessionExpiration, input.Config.CacheCleanupInterval),
		Journal:       input.Journal,
		Renderer:      input.Renderer,
		Cache:         input.Cache,
		Requests:      input.Requests,
		Messages:      input.Messages,
		ErrorsChannel: input.ErrorsChannel,
		GitBranch:     input.GitBranch,
		GitCommit:     input.GitCommit,
		Logger:        input.Logger,
	})

	return r, nil
}
