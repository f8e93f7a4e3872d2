package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Johnmalala/ziarazetupromaxx/internal/export"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/httperr"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	bookingQueries queries.BookingQueries
}

func NewAdminHandler(bookingQueries queries.BookingQueries) *AdminHandler {
	return &AdminHandler{
		bookingQueries: bookingQueries,
	}
}

// @Summary Export bookings
// @Description Download every booking as an XLSX workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/export [get]
func (h *AdminHandler) ExportBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	fileName := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)

	if err := export.WriteBookingsXLSX(c.Writer, views); err != nil {
		// Headers are out; all we can do is log through the error stack.
		_ = c.Error(err)
	}
}
