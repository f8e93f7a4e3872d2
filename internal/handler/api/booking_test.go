//go:build unit

package api_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/api"
	resdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/response"
	"github.com/Johnmalala/ziarazetupromaxx/internal/payment"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
	"github.com/Johnmalala/ziarazetupromaxx/tests/common/builder"
	"github.com/Johnmalala/ziarazetupromaxx/tests/common/httptest"
	"github.com/Johnmalala/ziarazetupromaxx/tests/common/testutil"
	commandsmock "github.com/Johnmalala/ziarazetupromaxx/tests/mock/commands"
	queriesmock "github.com/Johnmalala/ziarazetupromaxx/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockBookingCommands
	mockQueries   *queriesmock.MockBookingQueries
	mockAuthReads *commandsmock.MockAuthReadStore
	handler       *api.BookingHandler
	userID        uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockAuthReads = commandsmock.NewMockAuthReadStore(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := storage.NewResolver(config.StorageConfig{
		PublicBaseURL: "https://cdn.example.com",
		ListingBucket: "listings_images",
	}, logger)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, s.mockAuthReads, resolver)

	// Mock middleware behavior: every route runs authenticated.
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}
	s.router.POST("/bookings", authed, s.handler.Create)
	s.router.GET("/bookings", authed, s.handler.List)
	s.router.GET("/bookings/:id", authed, s.handler.Get)
	s.router.POST("/bookings/:id/confirm-payment", authed, s.handler.ConfirmPayment)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	bb := builder.NewBookingBuilder()
	reqBody := bb.BuildCreateRequestDTO()
	userView := builder.NewUserBuilder().With(func(u *builder.UserBuilder) {
		u.ID = s.userID
	}).BuildAuthorizedView()

	s.Run("success: 201 with booking and open checkout", func() {
		view := bb.With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView()
		result := &commands.CreateBookingResult{
			Booking: view,
			Checkout: &payment.Checkout{
				AuthorizationURL: "https://checkout.paystack.com/abc123",
				AccessCode:       "abc123",
				Reference:        view.ID.String(),
			},
		}

		s.mockAuthReads.EXPECT().FindByID(gomock.Any(), s.userID).
			Return(userView, nil).Times(1)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID, userView.Email).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.Booking.ID)
		s.Equal("pending", response.Booking.PaymentStatus)
		s.Require().NotNil(response.Checkout)
		s.Equal("https://checkout.paystack.com/abc123", response.Checkout.AuthorizationURL)
	})

	s.Run("success: 201 with null checkout when nothing to collect", func() {
		view := bb.With(func(b *builder.BookingBuilder) { b.TotalCents = 0 }).BuildView()
		result := &commands.CreateBookingResult{Booking: view}

		s.mockAuthReads.EXPECT().FindByID(gomock.Any(), s.userID).
			Return(userView, nil).Times(1)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID, userView.Email).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Nil(response.Checkout)
	})

	s.Run("error: 502 keeps the pending booking when checkout fails to open", func() {
		view := builder.NewBookingBuilder().BuildView()
		result := &commands.CreateBookingResult{Booking: view}

		s.mockAuthReads.EXPECT().FindByID(gomock.Any(), s.userID).
			Return(userView, nil).Times(1)
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID, userView.Email).
			Return(result, commands.ErrPaymentInitFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		s.Equal(http.StatusBadGateway, rec.Code)

		var response resdto.CreateBookingResponse
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal(view.ID, response.Booking.ID)
		s.Equal("pending", response.Booking.PaymentStatus)
		s.Nil(response.Checkout)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "listing not found",
				commandsError:  commands.ErrListingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Listing not found",
			},
			{
				name:           "invalid booking details",
				commandsError:  commands.ErrBookingValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking details",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuthReads.EXPECT().FindByID(gomock.Any(), s.userID).
					Return(userView, nil).Times(1)
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), s.userID, userView.Email).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: listing_id", mutate: testutil.Field("listing_id", nil)},
			{name: "missing field: payment_plan", mutate: testutil.Field("payment_plan", nil)},
			{name: "zero travelers", mutate: testutil.Field("travelers", 0)},
			{name: "malformed check_in_date", mutate: testutil.Field("check_in_date", "next tuesday")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	s.Run("success: returns the caller's bookings", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.UserID = s.userID }).BuildView(),
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("success: empty list stays an array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns an owned booking", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.UserID = s.userID
		}).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.ListingTitle, response.ListingTitle)
	})

	s.Run("error: 404 for someone else's booking", func() {
		view := builder.NewBookingBuilder().BuildView() // random owner
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 404 for a missing booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

func (s *BookingHandlerTestSuite) TestConfirmPayment() {
	s.Run("success: settles the booking", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.UserID = s.userID
			b.PaymentStatus = "paid"
		}).BuildView()
		s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), view.ID, s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+view.ID.String()+"/confirm-payment", nil, "token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("paid", response.PaymentStatus)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already settled",
				commandsError:  commands.ErrPaymentAlreadyDone,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking is already settled",
			},
			{
				name:           "provider has not settled the charge",
				commandsError:  commands.ErrPaymentNotSettled,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment has not completed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		id := uuid.New()
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ConfirmPayment(gomock.Any(), id, s.userID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/confirm-payment", nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
