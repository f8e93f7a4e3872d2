//go:build unit

package api_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/api"
	resdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/response"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/pkg/config"
	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
	"github.com/Johnmalala/ziarazetupromaxx/tests/common/builder"
	"github.com/Johnmalala/ziarazetupromaxx/tests/common/httptest"
	queriesmock "github.com/Johnmalala/ziarazetupromaxx/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockListingQueries
	handler     *api.ListingHandler
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := storage.NewResolver(config.StorageConfig{
		PublicBaseURL: "https://cdn.example.com",
		ListingBucket: "listings_images",
	}, logger)
	s.handler = api.NewListingHandler(s.mockQueries, resolver)

	s.router.GET("/listings", s.handler.List)
	s.router.GET("/listings/:id", s.handler.Get)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

func (s *ListingHandlerTestSuite) TestList() {
	s.Run("success: returns published listings without filters", func() {
		views := []*queries.ListingView{
			builder.NewListingBuilder().BuildView(),
			builder.NewListingBuilder().With(func(l *builder.ListingBuilder) {
				l.Title = "Diani Beach House"
				l.Category = "stay"
				l.Type = "beach"
			}).BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListingFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings", nil, "")

		var response []*resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("https://cdn.example.com/listings_images/listings/serengeti.jpg", response[0].PrimaryImageURL)
	})

	s.Run("success: passes the category and search term through", func() {
		category := listing.CategoryStay
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListingFilter{Category: &category, SearchTerm: "diani"}).
			Return([]*queries.ListingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings?category=stay&q=diani", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: category=all means no category filter", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListingFilter{}).
			Return([]*queries.ListingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings?category=all", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: the type tag narrows locally", func() {
		views := []*queries.ListingView{
			builder.NewListingBuilder().BuildView(), // type safari
			builder.NewListingBuilder().With(func(l *builder.ListingBuilder) {
				l.Title = "Mara Walking Tour"
				l.Type = "walking"
			}).BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.ListingFilter{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings?type=Safari", nil, "")

		var response []*resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Serengeti Safari", response[0].Title)
	})

	s.Run("error: 400 for an unknown category", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings?category=cruise", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid category")
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ListingHandlerTestSuite) TestGet() {
	s.Run("success: returns one published listing", func() {
		view := builder.NewListingBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+view.ID.String(), nil, "")

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Title, response.Title)
	})

	s.Run("error: 404 when the listing is missing or unpublished", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid listing ID format")
	})

	s.Run("error: 500 on other store failures", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
