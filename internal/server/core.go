// Package server exposes the HTTP API: seller and sale management plus
// the commission, network, action-plan and statement read endpoints.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	commissiondomain "github.com/teleforce-labs/teleforce/internal/commission/domain"
	"github.com/teleforce-labs/teleforce/internal/config"
	networkdomain "github.com/teleforce-labs/teleforce/internal/network/domain"
	"github.com/teleforce-labs/teleforce/internal/observability"
	qualificationdomain "github.com/teleforce-labs/teleforce/internal/qualification/domain"
	"github.com/teleforce-labs/teleforce/internal/ratelimit"
	saledomain "github.com/teleforce-labs/teleforce/internal/sale/domain"
	sellerdomain "github.com/teleforce-labs/teleforce/internal/seller/domain"
	statementdomain "github.com/teleforce-labs/teleforce/internal/statement/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Log              *zap.Logger
	Config           config.Config
	DB               *gorm.DB
	Metrics          *observability.Metrics
	Limiter          *ratelimit.Limiter
	SellerSvc        sellerdomain.Service
	SaleSvc          saledomain.Service
	CommissionSvc    commissiondomain.Service
	NetworkSvc       networkdomain.Service
	QualificationSvc qualificationdomain.Service
	StatementSvc     statementdomain.Service
}

type Server struct {
	log              *zap.Logger
	cfg              config.Config
	db               *gorm.DB
	metrics          *observability.Metrics
	limiter          *ratelimit.Limiter
	sellerSvc        sellerdomain.Service
	saleSvc          saledomain.Service
	commissionSvc    commissiondomain.Service
	networkSvc       networkdomain.Service
	qualificationSvc qualificationdomain.Service
	statementSvc     statementdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		log:              p.Log.Named("server"),
		cfg:              p.Config,
		db:               p.DB,
		metrics:          p.Metrics,
		limiter:          p.Limiter,
		sellerSvc:        p.SellerSvc,
		saleSvc:          p.SaleSvc,
		commissionSvc:    p.CommissionSvc,
		networkSvc:       p.NetworkSvc,
		qualificationSvc: p.QualificationSvc,
		statementSvc:     p.StatementSvc,
	}
}

func NewEngine(s *Server) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(s.metricsMiddleware())
	if s.limiter != nil {
		engine.Use(s.limiter.Middleware())
	}

	engine.GET("/healthz", s.Healthz)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	{
		api.POST("/sellers", s.CreateSeller)
		api.GET("/sellers", s.ListSellers)
		api.GET("/sellers/:code", s.GetSeller)
		api.GET("/sellers/:code/recruits", s.ListRecruits)
		api.GET("/sellers/:code/commissions", s.GetCommissions)
		api.GET("/sellers/:code/network", s.GetNetwork)
		api.GET("/sellers/:code/action-plan", s.GetActionPlan)
		api.GET("/sellers/:code/statement", s.GetStatement)

		api.POST("/sales", s.CreateSale)
		api.GET("/sales", s.ListSales)
		api.POST("/sales/:id/install", s.InstallSale)
		api.DELETE("/sales/:id", s.DeleteSale)
	}

	return engine
}

func (s *Server) Healthz(c *gin.Context) {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RunHTTP binds the engine to the configured address under the fx
// lifecycle.
func RunHTTP(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
