package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// SearchTerm takes search_term from the query string, falling back to a JSON
// or form body for POST searches.
func SearchTerm(c *gin.Context) string {
	if term, ok := c.GetQuery("search_term"); ok {
		return term
	}
	if c.Request.Method == "GET" || c.Request.ContentLength == 0 {
		return ""
	}
	var body struct {
		SearchTerm string `json:"search_term" form:"search_term"`
	}
	if err := c.ShouldBind(&body); err != nil {
		return ""
	}
	return body.SearchTerm
}
