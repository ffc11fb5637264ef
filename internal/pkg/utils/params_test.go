package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]bool{"1": true, "42": true, "0": false, "-3": false, "abc": false}
	for raw, ok := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: raw}}
		id, err := ParamID(c, "id")
		if ok {
			assert.NoError(t, err, raw)
			assert.Positive(t, id)
		} else {
			assert.Error(t, err, raw)
		}
	}
}

func TestSearchTerm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/venues/search?search_term=Hop", nil)
	assert.Equal(t, "Hop", SearchTerm(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/venues/search", strings.NewReader(`{"search_term":"band"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	assert.Equal(t, "band", SearchTerm(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	req = httptest.NewRequest(http.MethodPost, "/artists/search", strings.NewReader("search_term=sax"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	assert.Equal(t, "sax", SearchTerm(c))

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/venues/search", nil)
	assert.Equal(t, "", SearchTerm(c))
}
