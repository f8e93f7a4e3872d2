//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/api"
	reqdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/request"
	resdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/response"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
	"github.com/Johnmalala/ziarazetupromaxx/tests/common/httptest"
	"github.com/Johnmalala/ziarazetupromaxx/tests/common/testutil"
	commandsmock "github.com/Johnmalala/ziarazetupromaxx/tests/mock/commands"
	queriesmock "github.com/Johnmalala/ziarazetupromaxx/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CustomTripHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCustomRequestCommands
	mockQueries  *queriesmock.MockCustomRequestQueries
	handler      *api.CustomTripHandler
	userID       uuid.UUID
}

func (s *CustomTripHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCustomRequestCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCustomRequestQueries(s.mockCtrl)
	s.handler = api.NewCustomTripHandler(s.mockCommands, s.mockQueries)

	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Next()
	}
	s.router.POST("/custom-requests", authed, s.handler.Submit)
	s.router.GET("/custom-requests", authed, s.handler.List)
}

func (s *CustomTripHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCustomTripHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomTripHandlerTestSuite))
}

func (s *CustomTripHandlerTestSuite) TestSubmit() {
	url := "/custom-requests"
	budget := int64(300_000_00)
	reqBody := reqdto.SubmitCustomRequest{
		Destination: "Zanzibar",
		TravelDates: "June 2027",
		Travelers:   2,
		Details:     "Two weeks, beach plus spice farm day trips",
		BudgetCents: &budget,
	}

	s.Run("success: 201 with the new request id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().SubmitRequest(gomock.Any(), reqBody.ToParams(), s.userID).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id.String(), response["id"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: destination", mutate: testutil.Field("destination", nil)},
			{name: "missing field: details", mutate: testutil.Field("details", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 when the usecase rejects the request", func() {
		s.mockCommands.EXPECT().SubmitRequest(gomock.Any(), reqBody.ToParams(), s.userID).
			Return(uuid.Nil, commands.ErrRequestValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid trip request details")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().SubmitRequest(gomock.Any(), reqBody.ToParams(), s.userID).
			Return(uuid.Nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CustomTripHandlerTestSuite) TestList() {
	url := "/custom-requests"

	s.Run("success: returns the caller's requests", func() {
		views := []*queries.CustomRequestView{
			{
				ID:          uuid.New(),
				TripDetails: "Destination: Zanzibar",
				Status:      "pending",
				CreatedAt:   time.Now(),
			},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.CustomRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(views[0].ID, response[0].ID)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
