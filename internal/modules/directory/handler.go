package directory

import (
	"errors"
	"net/http"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/response"
	"fyyur/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListVenues godoc
// @Summary Venues grouped by city and state
// @Tags venues
// @Produce json
// @Router /venues [get]
func (h *Handler) ListVenues(c *gin.Context) {
	now := h.service.Now()
	areas, err := h.service.ListVenues(c.Request.Context(), now)
	if err != nil {
		storeFailure(c, err, "Venues could not be loaded.", []Area{})
		return
	}
	response.Success(c, http.StatusOK, areas)
}

// SearchVenues godoc
// @Summary Search venues by name
// @Tags venues
// @Produce json
// @Param search_term query string false "Case-insensitive substring"
// @Router /venues/search [get]
func (h *Handler) SearchVenues(c *gin.Context) {
	now := h.service.Now()
	result, err := h.service.SearchVenues(c.Request.Context(), utils.SearchTerm(c), now)
	if err != nil {
		storeFailure(c, err, "Venue search failed.", EmptySearch())
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetVenue godoc
// @Summary Venue profile with past and upcoming shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Router /venues/{id} [get]
func (h *Handler) GetVenue(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	now := h.service.Now()
	detail, err := h.service.VenueDetail(c.Request.Context(), id, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
			return
		}
		storeFailure(c, err, "Venue could not be loaded.", nil)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// ListArtists godoc
// @Summary Artists ordered by name
// @Tags artists
// @Produce json
// @Router /artists [get]
func (h *Handler) ListArtists(c *gin.Context) {
	artists, err := h.service.ListArtists(c.Request.Context())
	if err != nil {
		storeFailure(c, err, "Artists could not be loaded.", []ArtistListing{})
		return
	}
	response.Success(c, http.StatusOK, artists)
}

// SearchArtists godoc
// @Summary Search artists by name
// @Tags artists
// @Produce json
// @Param search_term query string false "Case-insensitive substring"
// @Router /artists/search [get]
func (h *Handler) SearchArtists(c *gin.Context) {
	now := h.service.Now()
	result, err := h.service.SearchArtists(c.Request.Context(), utils.SearchTerm(c), now)
	if err != nil {
		storeFailure(c, err, "Artist search failed.", EmptySearch())
		return
	}
	response.Success(c, http.StatusOK, result)
}

// GetArtist godoc
// @Summary Artist profile with past and upcoming shows
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Router /artists/{id} [get]
func (h *Handler) GetArtist(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}

	now := h.service.Now()
	detail, err := h.service.ArtistDetail(c.Request.Context(), id, now)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Artist not found")
			return
		}
		storeFailure(c, err, "Artist could not be loaded.", nil)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

// ListShows godoc
// @Summary All shows ordered by start time
// @Tags shows
// @Produce json
// @Router /shows [get]
func (h *Handler) ListShows(c *gin.Context) {
	shows, err := h.service.ListShows(c.Request.Context())
	if err != nil {
		storeFailure(c, err, "Shows could not be loaded.", []ShowListing{})
		return
	}
	response.Success(c, http.StatusOK, shows)
}

// ListGenres godoc
// @Summary Genre tags accepted on venues and artists
// @Tags meta
// @Router /meta/genres [get]
func (h *Handler) ListGenres(c *gin.Context) {
	response.Success(c, http.StatusOK, domain.GenreChoices())
}

// ListStates godoc
// @Summary US state codes accepted on venues and artists
// @Tags meta
// @Router /meta/states [get]
func (h *Handler) ListStates(c *gin.Context) {
	response.Success(c, http.StatusOK, domain.StateChoices())
}

// storeFailure answers with the empty shape of the result and a notice.
func storeFailure(c *gin.Context, err error, message string, empty any) {
	zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("directory store failure")
	response.Notice(c, http.StatusInternalServerError, "STORE_FAILURE", "An error occurred. "+message, empty)
}
