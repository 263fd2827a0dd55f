package main

import (
	"context"

	"github.com/advanced-computing/bouncing-penguin/infrastructure/integrator/socrata"
	"github.com/advanced-computing/bouncing-penguin/infrastructure/integrator/socrata/socrataclient"
	"github.com/advanced-computing/bouncing-penguin/infrastructure/renderer/gochart"
	"github.com/advanced-computing/bouncing-penguin/internal/api"
	"github.com/advanced-computing/bouncing-penguin/internal/cache"
	"github.com/advanced-computing/bouncing-penguin/internal/config"
	"github.com/advanced-computing/bouncing-penguin/internal/domain"
	"github.com/advanced-computing/bouncing-penguin/internal/scheduler"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/dashboarding"
	"github.com/advanced-computing/bouncing-penguin/internal/usecases/loading"
	"github.com/advanced-computing/bouncing-penguin/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	level := log.Setup(cfg.App.LogLevel)
	logrus.Infof("main: log level set to %s", level)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	socrataClient := socrataclient.NewClient(cfg)
	integrator := socrata.New(socrataClient)

	// Uma tabela limpa por dataset; o tamanho só protege contra chaves inesperadas
	tableCache := cache.New[*domain.Table](cfg.Cache.TTL, cache.WithSize(cfg.Cache.Size))

	loader := loading.NewService(integrator, tableCache)
	dashboard := dashboarding.NewService(loader, cfg)

	cacheWarmer := scheduler.NewCacheWarmerService(loader, dashboard.Datasets(), cfg)
	if err := cacheWarmer.Start(ctx); err != nil {
		logrus.WithError(err).Error("main: failed to start cache warmer")
	}

	server, err := api.New(cfg, dashboard, gochart.New(), tableCache, cacheWarmer)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
