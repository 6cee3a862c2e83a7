package catalog

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/teleforce-labs/teleforce/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("catalog",
	fx.Provide(NewProvider),
	fx.Invoke(loadPlan),
)

func loadPlan(lc fx.Lifecycle, p *Provider, cfg config.Config, log *zap.Logger) error {
	if err := p.LoadFromFile(cfg.Plan.Path); err != nil {
		return err
	}
	if !cfg.Plan.Watch {
		return nil
	}

	var watcher *fsnotify.Watcher
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			w, err := p.Watch(cfg.Plan.Path)
			if err != nil {
				return err
			}
			watcher = w
			return nil
		},
		OnStop: func(context.Context) error {
			if watcher != nil {
				return watcher.Close()
			}
			return nil
		},
	})
	return nil
}
