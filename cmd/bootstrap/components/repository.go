package components

import (
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra/readstore"
	repo_impl "github.com/Johnmalala/ziarazetupromaxx/internal/infra/repository"
	"github.com/Johnmalala/ziarazetupromaxx/internal/payment"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewProfileRepository,
			fx.As(new(commands.ProfileRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewVolunteerRepository,
			fx.As(new(commands.VolunteerRepository)),
		),
		fx.Annotate(
			repo_impl.NewCustomRequestRepository,
			fx.As(new(commands.CustomRequestRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewListingReadStore,
			fx.As(new(queries.ListingReadStore)),
			fx.As(new(commands.ListingReads)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomRequestReadStore,
			fx.As(new(queries.CustomRequestReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.AuthReadStore)),
		),
		// Payment gateway
		fx.Annotate(
			NewPaystackClient,
			fx.As(new(commands.PaymentGateway)),
		),
	),
)

func NewPaystackClient(cfg config.Config) *payment.Client {
	return payment.NewClient(cfg.Paystack)
}
