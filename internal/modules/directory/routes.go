package directory

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the read-only directory. cached runs only before
// routes whose answer does not depend on the request clock; listings with
// upcoming counts and the past/upcoming detail pages are always computed
// against a fresh now.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, cached ...gin.HandlerFunc) {
	venues := rg.Group("/venues")
	{
		venues.GET("", h.ListVenues)
		venues.GET("/search", h.SearchVenues)
		venues.POST("/search", h.SearchVenues)
		venues.GET("/:id", h.GetVenue)
	}

	artists := rg.Group("/artists")
	{
		artists.Group("", cached...).GET("", h.ListArtists)
		artists.GET("/search", h.SearchArtists)
		artists.POST("/search", h.SearchArtists)
		artists.GET("/:id", h.GetArtist)
	}

	rg.Group("/shows", cached...).GET("", h.ListShows)

	meta := rg.Group("/meta", cached...)
	{
		meta.GET("/genres", h.ListGenres)
		meta.GET("/states", h.ListStates)
	}
}
