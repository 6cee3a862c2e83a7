package seller

import (
	"github.com/teleforce-labs/teleforce/internal/seller/repository"
	"github.com/teleforce-labs/teleforce/internal/seller/service"
	"go.uber.org/fx"
)

var Module = fx.Module("seller.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
