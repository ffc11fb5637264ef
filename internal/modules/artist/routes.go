package artist

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the artist write endpoints. mw runs before each handler.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	artists := rg.Group("/artists", mw...)
	{
		artists.POST("", h.CreateArtist)
		artists.GET("/:id/edit", h.GetArtistForEdit)
		artists.PUT("/:id", h.UpdateArtist)
	}
}
