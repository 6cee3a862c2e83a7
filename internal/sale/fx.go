package sale

import (
	"github.com/teleforce-labs/teleforce/internal/sale/repository"
	"github.com/teleforce-labs/teleforce/internal/sale/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sale.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
