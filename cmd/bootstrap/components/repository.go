package components

import (
	"parking-pricing/internal/infra/readstore"
	"parking-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			readstore.NewRateReadStore,
			fx.As(new(queries.RateReadStore)),
		),
	),
)
