package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/httperr"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/middleware"
	"github.com/Johnmalala/ziarazetupromaxx/internal/realtime"

	"github.com/gin-gonic/gin"
)

// ChangesHandler streams change events over SSE so clients can reload on
// mutation instead of polling. Events carry row identity only; the client
// refetches through the regular endpoints.
type ChangesHandler struct {
	feed realtime.Feed
}

func NewChangesHandler(feed realtime.Feed) *ChangesHandler {
	return &ChangesHandler{feed: feed}
}

// userScopedTables require an authenticated caller and only deliver that
// caller's rows.
var userScopedTables = map[string]bool{
	realtime.TableBookings:       true,
	realtime.TableProfiles:       true,
	realtime.TableCustomRequests: true,
	realtime.TableApplications:   true,
}

var publicTables = map[string]bool{
	realtime.TableListings: true,
}

// @Summary Stream change events
// @Description Server-sent events for one table; user-scoped tables only
// @Description deliver the caller's own rows
// @Tags changes
// @Produce text/event-stream
// @Param table query string true "Table to watch"
// @Success 200 {string} string "event stream"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /changes [get]
func (h *ChangesHandler) Stream(c *gin.Context) {
	table := c.Query("table")
	if !publicTables[table] && !userScopedTables[table] {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown table",
		})
		return
	}

	userID, authed := middleware.GetUserID(c)
	if userScopedTables[table] && !authed {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Access token required",
		})
		return
	}

	sub, err := h.feed.Subscribe(c.Request.Context(), table)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeaderNow()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case change, ok := <-sub.Events():
			if !ok {
				return false
			}
			if userScopedTables[table] {
				if table == realtime.TableProfiles {
					if !change.MatchesRow(userID) {
						return true
					}
				} else if !change.MatchesUser(userID) {
					return true
				}
			}
			payload, err := json.Marshal(change)
			if err != nil {
				return true
			}
			c.SSEvent("change", string(payload))
			return true
		}
	})
}
