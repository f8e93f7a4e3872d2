package api

import (
	"errors"
	"net/http"

	reqdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/request"
	resdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/response"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/httperr"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/middleware"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CustomTripHandler struct {
	requestCommands commands.CustomRequestCommands
	requestQueries  queries.CustomRequestQueries
}

func NewCustomTripHandler(requestCommands commands.CustomRequestCommands, requestQueries queries.CustomRequestQueries) *CustomTripHandler {
	return &CustomTripHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary Submit a custom trip request
// @Tags custom-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitCustomRequest true "Trip request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /custom-requests [post]
func (h *CustomTripHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SubmitCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.requestCommands.SubmitRequest(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRequestValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid trip request details",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List own custom trip requests
// @Tags custom-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CustomRequestResponse
// @Failure 401 {object} map[string]string
// @Router /custom-requests [get]
func (h *CustomTripHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.requestQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomRequestViews(views))
}
