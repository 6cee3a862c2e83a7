// Package catalog loads the commission plan from its YAML file and keeps
// it current when the file changes on disk.
package catalog

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	catalogdomain "github.com/teleforce-labs/teleforce/internal/catalog/domain"
	"go.uber.org/zap"
)

// Provider holds the active commission plan. Reads are lock-free; the
// watcher swaps the whole plan atomically so callers never observe a
// half-applied file.
type Provider struct {
	log  *zap.Logger
	plan atomic.Value // catalogdomain.CommissionPlan
}

func NewProvider(log *zap.Logger) *Provider {
	p := &Provider{log: log.Named("catalog")}
	p.plan.Store(catalogdomain.DefaultPlan())
	return p
}

// Plan returns the active commission plan.
func (p *Provider) Plan() catalogdomain.CommissionPlan {
	return p.plan.Load().(catalogdomain.CommissionPlan)
}

// LoadFromFile replaces the active plan with the contents of a plan file.
// A missing file is not an error; the default plan stays active.
func (p *Provider) LoadFromFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		p.log.Info("no plan file, using built-in plan", zap.String("path", path))
		return nil
	}

	plan, err := readPlanFile(path)
	if err != nil {
		return err
	}
	p.plan.Store(plan)
	p.log.Info("commission plan loaded", zap.String("path", path))
	return nil
}

// Watch re-applies the plan file whenever it is written. A file that
// fails to parse is logged and skipped; the previous plan stays active.
func (p *Provider) Watch(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if err := p.LoadFromFile(path); err != nil {
					p.log.Warn("plan reload failed, keeping previous plan",
						zap.String("path", path), zap.Error(err))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("plan watcher error", zap.Error(err))
			}
		}
	}()

	return watcher, nil
}

// planFile is the on-disk shape of a commission plan.
type planFile struct {
	Points            map[string]int             `mapstructure:"points"`
	Rates             map[int]map[string]float64 `mapstructure:"rates"`
	StarterFloorCents int64                      `mapstructure:"starter_floor_cents"`
}

func readPlanFile(path string) (catalogdomain.CommissionPlan, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return catalogdomain.CommissionPlan{}, fmt.Errorf("read plan file: %w", err)
	}

	var file planFile
	if err := v.Unmarshal(&file); err != nil {
		return catalogdomain.CommissionPlan{}, fmt.Errorf("parse plan file: %w", err)
	}
	if len(file.Points) == 0 || len(file.Rates) == 0 {
		return catalogdomain.CommissionPlan{}, fmt.Errorf("plan file %s has no points or rates", path)
	}

	plan := catalogdomain.CommissionPlan{
		Points:            catalogdomain.PointValuation{},
		Schedule:          catalogdomain.TierSchedule{Rates: map[int]map[catalogdomain.Product]int64{}},
		StarterFloorCents: file.StarterFloorCents,
	}
	if plan.StarterFloorCents == 0 {
		plan.StarterFloorCents = catalogdomain.DefaultPlan().StarterFloorCents
	}

	for raw, points := range file.Points {
		if points < 0 {
			return catalogdomain.CommissionPlan{}, fmt.Errorf("negative point value for %q", raw)
		}
		plan.Points[catalogdomain.Canonicalize(raw)] = points
	}
	for tier, rates := range file.Rates {
		if tier < 1 || tier > 4 {
			return catalogdomain.CommissionPlan{}, fmt.Errorf("invalid tier %d in plan file", tier)
		}
		row := map[catalogdomain.Product]int64{}
		for raw, cents := range rates {
			row[catalogdomain.Canonicalize(raw)] = int64(cents)
		}
		plan.Schedule.Rates[tier] = row
	}

	return plan, nil
}
