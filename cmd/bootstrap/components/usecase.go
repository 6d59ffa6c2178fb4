package components

import (
	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/usecase"
	"parking-pricing/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	// DYNAMIC plans price to zero until a real strategy replaces this
	fx.Annotate(
		rate.NewNoopDynamicPricer,
		fx.As(new(rate.DynamicPricer)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
