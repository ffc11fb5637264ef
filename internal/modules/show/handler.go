package show

import (
	"errors"
	"net/http"

	"fyyur/internal/domain"
	"fyyur/internal/modules/scheduling"
	"fyyur/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateShow godoc
// @Summary Schedule a show
// @Description Admits the show only if the start time falls inside one of the artist's weekly availability windows.
// @Tags shows
// @Accept json
// @Produce json
// @Param request body CreateShowRequest true "Show"
// @Success 201 {object} CreateShowResponse
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /shows [post]
func (h *Handler) CreateShow(c *gin.Context) {
	var req CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	out, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, out)
		return
	}

	response.Success(c, http.StatusCreated, newCreateShowResponse(out))
}

func handleError(c *gin.Context, err error, out Outcome) {
	var verr *domain.ValidationError
	rejected := newCreateShowResponse(out)

	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Submitted show is invalid", verr.Fields)
	case errors.Is(err, scheduling.ErrNotAvailable):
		response.Notice(c, http.StatusConflict, "NOT_AVAILABLE",
			"Show cannot be scheduled. Artist is not available at this time.", rejected)
	case errors.Is(err, scheduling.ErrArtistNotFound):
		response.Notice(c, http.StatusNotFound, "ARTIST_NOT_FOUND", "Artist not found", rejected)
	case errors.Is(err, ErrVenueNotFound):
		response.Error(c, http.StatusNotFound, "VENUE_NOT_FOUND", "Venue not found")
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("show store failure")
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "An error occurred. Show could not be listed.")
	}
}
