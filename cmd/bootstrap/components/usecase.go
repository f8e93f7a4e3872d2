package components

import (
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/clock"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
	"github.com/Johnmalala/ziarazetupromaxx/internal/watch"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	watchModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewProfileCommands,
		commands.NewVolunteerCommands,
		commands.NewCustomRequestCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewListingQueries,
		queries.NewBookingQueries,
		queries.NewProfileQueries,
		queries.NewCustomRequestQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var watchModule = fx.Module("usecase/watch",
	fx.Provide(
		watch.NewResources,
	),
)
