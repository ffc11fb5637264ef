package show

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	shows := rg.Group("/shows", mw...)
	shows.POST("", h.CreateShow)
}
