package api

import (
	"net/http"

	"github.com/Johnmalala/ziarazetupromaxx/internal/domain/listing"
	resdto "github.com/Johnmalala/ziarazetupromaxx/internal/handler/dto/response"
	"github.com/Johnmalala/ziarazetupromaxx/internal/handler/httperr"
	"github.com/Johnmalala/ziarazetupromaxx/internal/infra"
	"github.com/Johnmalala/ziarazetupromaxx/internal/storage"
	"github.com/Johnmalala/ziarazetupromaxx/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	listingQueries queries.ListingQueries
	resolver       *storage.Resolver
}

func NewListingHandler(listingQueries queries.ListingQueries, resolver *storage.Resolver) *ListingHandler {
	return &ListingHandler{
		listingQueries: listingQueries,
		resolver:       resolver,
	}
}

// @Summary List listings
// @Description List published listings, newest first. Category and search
// @Description narrow remotely; the subtype tag narrows locally.
// @Tags listings
// @Produce json
// @Param category query string false "tour, stay or volunteer"
// @Param q query string false "Search term against title or description"
// @Param type query string false "Subtype tag, e.g. safari or beach"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Router /listings [get]
func (h *ListingHandler) List(c *gin.Context) {
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

	views, err := h.listingQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	views = listing.FilterBySubtype(views, c.Query("type"))
	c.JSON(http.StatusOK, resdto.FromListingViews(views, h.resolver))
}

// @Summary Get listing
// @Description Get one published listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid listing ID format",
		})
		return
	}

	view, err := h.listingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Listing not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingView(view, h.resolver))
}
