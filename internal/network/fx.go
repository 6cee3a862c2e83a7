package network

import (
	"github.com/teleforce-labs/teleforce/internal/network/service"
	"go.uber.org/fx"
)

var Module = fx.Module("network.service",
	fx.Provide(service.New),
)
