package api

import (
	"errors"
	"net/http"

	reqdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/request"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/httperr"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/middleware"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VolunteerHandler struct {
	volunteerCommands commands.VolunteerCommands
}

func NewVolunteerHandler(volunteerCommands commands.VolunteerCommands) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerCommands: volunteerCommands,
	}
}

// @Summary Apply for a volunteer placement
// @Tags volunteer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ApplyRequest true "Application"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /volunteer-applications [post]
func (h *VolunteerHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.volunteerCommands.Apply(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrListingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Volunteer opportunity not found",
			})
		case errors.Is(err, commands.ErrApplicationValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid application details",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}
