package components

import (
	"log/slog"

	"github.com/Johnmalala/ziarazetupromaxx/internal/handler"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/api"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/middleware"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewStorageResolver,
		api.NewAuthHandler,
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewProfileHandler,
		api.NewVolunteerHandler,
		api.NewCustomTripHandler,
		api.NewChangesHandler,
		api.NewWatchHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewStorageResolver(cfg config.Config, logger *slog.Logger) *storage.Resolver {
	return storage.NewResolver(cfg.Storage, logger)
}

func NewHandlers(
	auth *api.AuthHandler,
	listing *api.ListingHandler,
	booking *api.BookingHandler,
	profile *api.ProfileHandler,
	volunteer *api.VolunteerHandler,
	customTrip *api.CustomTripHandler,
	changes *api.ChangesHandler,
	watch *api.WatchHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:       auth,
		Listing:    listing,
		Booking:    booking,
		Profile:    profile,
		Volunteer:  volunteer,
		CustomTrip: customTrip,
		Changes:    changes,
		Watch:      watch,
		Admin:      admin,
	}
}
