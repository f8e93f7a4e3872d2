package api

import (
	"io"
	"net/http"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"
	resdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/response"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/httperr"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/middleware"
	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"
	"github.com/Johnmalala/ziarazetupromaxx/internal/watch"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WatchHandler streams live resource snapshots: an initial fetch, then a
// refetched snapshot after every change event, until the client goes away.
// Each event carries {data, loading, error} like the page state it feeds.
type WatchHandler struct {
	resources *watch.Resources
	resolver  *storage.Resolver
}

func NewWatchHandler(resources *watch.Resources, resolver *storage.Resolver) *WatchHandler {
	return &WatchHandler{
		resources: resources,
		resolver:  resolver,
	}
}

type snapshotPayload struct {
	Data    any    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// @Summary Watch listings
// @Description Stream snapshots of the published listings matching the filter
// @Tags watch
// @Produce text/event-stream
// @Param category query string false "tour, stay or volunteer"
// @Param q query string false "Search term"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} map[string]string
// @Router /watch/listings [get]
func (h *WatchHandler) Listings(c *gin.Context) {
	var filter queries.ListingFilter
	if raw := c.Query("category"); raw != "" && raw != "all" {
		category, err := listing.NewCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid category",
			})
			return
		}
		filter.Category = &category
	}
	filter.SearchTerm = c.Query("q")

	w, err := h.resources.Listings(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	streamSnapshots(c, w, func(views []*queries.ListingView) any {
		return resdto.FromListingViews(views, h.resolver)
	})
}

// @Summary Watch one listing
// @Tags watch
// @Produce text/event-stream
// @Param id path string true "Listing ID"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} map[string]string
// @Router /watch/listings/{id} [get]
func (h *WatchHandler) Listing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	w, err := h.resources.Listing(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	streamSnapshots(c, w, func(view *queries.ListingView) any {
		if view == nil {
			return nil
		}
		return resdto.FromListingView(view, h.resolver)
	})
}

// @Summary Watch own bookings
// @Tags watch
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Failure 401 {object} map[string]string
// @Router /watch/bookings [get]
func (h *WatchHandler) Bookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	w, err := h.resources.Bookings(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	streamSnapshots(c, w, func(views []*queries.BookingView) any {
		return resdto.FromBookingViews(views, h.resolver)
	})
}

// @Summary Watch own profile
// @Tags watch
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Failure 401 {object} map[string]string
// @Router /watch/profile [get]
func (h *WatchHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	w, err := h.resources.Profile(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	streamSnapshots(c, w, func(view *queries.ProfileView) any {
		if view == nil {
			return nil
		}
		return resdto.FromProfileView(view)
	})
}

// @Summary Watch own custom trip requests
// @Tags watch
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string "event stream"
// @Failure 401 {object} map[string]string
// @Router /watch/custom-requests [get]
func (h *WatchHandler) CustomRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	w, err := h.resources.CustomRequests(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	streamSnapshots(c, w, func(views []*queries.CustomRequestView) any {
		return resdto.FromCustomRequestViews(views)
	})
}

func streamSnapshots[T any](c *gin.Context, w *watch.Watcher[T], present func(T) any) {
	defer w.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()

	ctx := c.Request.Context()
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case snap, ok := <-w.Updates():
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snapshotPayload{
				Data:    present(snap.Data),
				Loading: snap.Loading,
				Error:   snap.Err,
			})
			return true
		}
	})
}
