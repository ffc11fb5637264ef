package artist

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

// CreateArtist godoc
// @Summary Create an artist
// @Tags artists
// @Accept json
// @Produce json
// @Param request body ArtistRequest true "Artist"
// @Success 201 {object} domain.Artist
// @Failure 400 {object} map[string]interface{}
// @Router /artists [post]
func (h *Handler) CreateArtist(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	artist, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Artist "+req.Name+" could not be listed.")
		return
	}

	response.Success(c, http.StatusCreated, artist)
}

// GetArtistForEdit godoc
// @Summary Get an artist record for editing
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Router /artists/{id}/edit [get]
func (h *Handler) GetArtistForEdit(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}

	artist, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Artist could not be loaded.")
		return
	}

	response.Success(c, http.StatusOK, artist)
}

// UpdateArtist godoc
// @Summary Edit an artist
// @Tags artists
// @Accept json
// @Produce json
// @Param id path int true "Artist ID"
// @Param request body ArtistRequest true "Artist"
// @Router /artists/{id} [put]
func (h *Handler) UpdateArtist(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid artist ID")
		return
	}

	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	artist, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "Artist could not be updated.")
		return
	}

	response.Success(c, http.StatusOK, artist)
}

func handleError(c *gin.Context, err error, failureMessage string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Submitted artist is invalid", verr.Fields)
	case errors.Is(err, ErrArtistNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Artist not found")
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("artist store failure")
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "An error occurred. "+failureMessage)
	}
}
