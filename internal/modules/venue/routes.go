package venue

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the venue write endpoints. mw runs before each handler.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	venues := rg.Group("/venues", mw...)
	{
		venues.POST("", h.CreateVenue)
		venues.GET("/:id/edit", h.GetVenueForEdit)
		venues.PUT("/:id", h.UpdateVenue)
		venues.DELETE("/:id", h.DeleteVenue)
	}
}
