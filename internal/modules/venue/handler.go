package venue

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

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param request body VenueRequest true "Venue"
// @Success 201 {object} domain.Venue
// @Failure 400 {object} map[string]interface{}
// @Router /venues [post]
func (h *Handler) CreateVenue(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	venue, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Venue "+req.Name+" could not be listed.")
		return
	}

	response.Success(c, http.StatusCreated, venue)
}

// GetVenueForEdit godoc
// @Summary Get a venue record for editing
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Router /venues/{id}/edit [get]
func (h *Handler) GetVenueForEdit(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	venue, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Venue could not be loaded.")
		return
	}

	response.Success(c, http.StatusOK, venue)
}

// UpdateVenue godoc
// @Summary Edit a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param request body VenueRequest true "Venue"
// @Router /venues/{id} [put]
func (h *Handler) UpdateVenue(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	venue, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err, "Venue could not be updated.")
		return
	}

	response.Success(c, http.StatusOK, venue)
}

// DeleteVenue godoc
// @Summary Delete a venue and its shows
// @Tags venues
// @Param id path int true "Venue ID"
// @Router /venues/{id} [delete]
func (h *Handler) DeleteVenue(c *gin.Context) {
	id, err := utils.ParamID(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid venue ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err, "Venue could not be deleted.")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true})
}

func handleError(c *gin.Context, err error, failureMessage string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Submitted venue is invalid", verr.Fields)
	case errors.Is(err, ErrVenueNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Venue not found")
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("venue store failure")
		response.Error(c, http.StatusInternalServerError, "STORE_FAILURE", "An error occurred. "+failureMessage)
	}
}
