package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"fyyur/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type client struct {
	t *testing.T
	r *gin.Engine
}

func newClient(t *testing.T) *client {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Deps{
		DB:     testutil.NewDB(t),
		Logger: zerolog.Nop(),
	})
	return &client{t: t, r: r}
}

func (c *client) do(method, path, body string, out any) (int, envelope) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	var env envelope
	require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil && len(env.Data) > 0 {
		require.NoError(c.t, json.Unmarshal(env.Data, out))
	}
	return w.Code, env
}

type idOnly struct {
	ID int64 `json:"id"`
}

func (c *client) createVenue(name string) int64 {
	c.t.Helper()
	body := `{"name":"` + name + `","city":"San Francisco","state":"CA","address":"1015 Folsom Street",
		"phone":"123-123-1234","genres":["Jazz"]}`
	var v idOnly
	code, _ := c.do(http.MethodPost, "/api/v1/venues", body, &v)
	require.Equal(c.t, http.StatusCreated, code)
	return v.ID
}

// createArtist stores an artist available Wednesdays 18:00 to 23:00.
func (c *client) createArtist(name string) int64 {
	c.t.Helper()
	body := `{"name":"` + name + `","city":"San Francisco","state":"CA","phone":"432-325-5432",
		"genres":["Jazz"],"availabilities":[{"day_of_week":2,"start_time":"18:00","end_time":"23:00"}]}`
	var a idOnly
	code, _ := c.do(http.MethodPost, "/api/v1/artists", body, &a)
	require.Equal(c.t, http.StatusCreated, code)
	return a.ID
}

func (c *client) createShow(artistID, venueID int64, start string) int {
	c.t.Helper()
	body := `{"artist_id":` + strconv.FormatInt(artistID, 10) + `,"venue_id":` +
		strconv.FormatInt(venueID, 10) + `,"start_time":"` + start + `"}`
	code, _ := c.do(http.MethodPost, "/api/v1/shows", body, nil)
	return code
}

func TestHealth(t *testing.T) {
	c := newClient(t)
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestScheduling_EndToEnd(t *testing.T) {
	c := newClient(t)
	venueID := c.createVenue("The Musical Hop")
	artistID := c.createArtist("The Wild Sax Band")

	// 2035-04-04 is a Wednesday.
	assert.Equal(t, http.StatusCreated, c.createShow(artistID, venueID, "2035-04-04T20:00:00Z"))
	assert.Equal(t, http.StatusConflict, c.createShow(artistID, venueID, "2035-04-04T17:59:00Z"))
	assert.Equal(t, http.StatusConflict, c.createShow(artistID, venueID, "2035-04-05T20:00:00Z"))
	assert.Equal(t, http.StatusCreated, c.createShow(artistID, venueID, "2019-05-22T21:00:00Z"))

	var detail struct {
		PastShowsCount     int `json:"past_shows_count"`
		UpcomingShowsCount int `json:"upcoming_shows_count"`
		UpcomingShows      []struct {
			ArtistName string `json:"artist_name"`
			StartTime  string `json:"start_time"`
		} `json:"upcoming_shows"`
	}
	code, _ := c.do(http.MethodGet, "/api/v1/venues/"+strconv.FormatInt(venueID, 10), "", &detail)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	assert.Equal(t, "The Wild Sax Band", detail.UpcomingShows[0].ArtistName)
	assert.Equal(t, "2035-04-04T20:00:00.000Z", detail.UpcomingShows[0].StartTime)

	var search struct {
		Count int `json:"count"`
		Data  []struct {
			Name             string `json:"name"`
			NumUpcomingShows int    `json:"num_upcoming_shows"`
		} `json:"data"`
	}
	code, _ = c.do(http.MethodGet, "/api/v1/artists/search?search_term=BAND", "", &search)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, search.Count)
	assert.Equal(t, 1, search.Data[0].NumUpcomingShows)

	code, _ = c.do(http.MethodGet, "/api/v1/artists/search?search_term=xyz-nomatch", "", &search)
	require.Equal(t, http.StatusOK, code)
	assert.Zero(t, search.Count)
	assert.Empty(t, search.Data)
}

func TestDeleteVenue_RemovesShows(t *testing.T) {
	c := newClient(t)
	venueID := c.createVenue("The Musical Hop")
	otherID := c.createVenue("Park Square Live Music & Coffee")
	artistID := c.createArtist("Guns N Petals")
	require.Equal(t, http.StatusCreated, c.createShow(artistID, venueID, "2035-04-04T20:00:00Z"))
	require.Equal(t, http.StatusCreated, c.createShow(artistID, venueID, "2035-04-11T20:00:00Z"))
	require.Equal(t, http.StatusCreated, c.createShow(artistID, otherID, "2035-04-18T20:00:00Z"))

	path := "/api/v1/venues/" + strconv.FormatInt(venueID, 10)
	code, _ := c.do(http.MethodDelete, path, "", nil)
	require.Equal(t, http.StatusOK, code)

	code, env := c.do(http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	var shows []struct {
		VenueID int64 `json:"venue_id"`
	}
	code, _ = c.do(http.MethodGet, "/api/v1/shows", "", &shows)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, shows, 1)
	assert.Equal(t, otherID, shows[0].VenueID)

	var artist struct {
		UpcomingShowsCount int `json:"upcoming_shows_count"`
	}
	code, _ = c.do(http.MethodGet, "/api/v1/artists/"+strconv.FormatInt(artistID, 10), "", &artist)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, artist.UpcomingShowsCount)
}

func TestListVenues_GroupsCreatedVenues(t *testing.T) {
	c := newClient(t)
	c.createVenue("The Musical Hop")
	c.createVenue("Park Square Live Music & Coffee")

	var areas []struct {
		City   string `json:"city"`
		State  string `json:"state"`
		Venues []struct {
			Name string `json:"name"`
		} `json:"venues"`
	}
	code, _ := c.do(http.MethodGet, "/api/v1/venues", "", &areas)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, areas, 1)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Len(t, areas[0].Venues, 2)
}
