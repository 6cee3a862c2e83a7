package qualification

import (
	"github.com/teleforce-labs/teleforce/internal/qualification/service"
	"go.uber.org/fx"
)

var Module = fx.Module("qualification.service",
	fx.Provide(service.New),
)
