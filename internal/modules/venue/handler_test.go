package venue

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"fyyur/internal/domain"
	"fyyur/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const musicalHop = `{
	"name": "The Musical Hop",
	"city": "San Francisco",
	"state": "ca",
	"address": "1015 Folsom Street",
	"phone": "123-123-1234",
	"genres": ["Jazz", "Reggae", "Classical", "Folk"],
	"website": "https://www.themusicalhop.com",
	"facebook_link": "https://www.facebook.com/TheMusicalHop",
	"seeking_talent": true,
	"seeking_description": "We are on the lookout for a local artist to play every two weeks."
}`

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setup(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	r := gin.New()
	NewHandler(NewService(db)).RegisterRoutes(r.Group("/api/v1"))
	return r, db
}

func do(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestCreateVenue(t *testing.T) {
	r, db := setup(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/venues", musicalHop)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)

	var created domain.Venue
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "CA", created.State)

	var stored domain.Venue
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "The Musical Hop", stored.Name)
	assert.Equal(t, domain.Genres{"Jazz", "Reggae", "Classical", "Folk"}, stored.Genres)
	assert.True(t, stored.SeekingTalent)
}

func TestCreateVenue_Validation(t *testing.T) {
	r, db := setup(t)

	body := `{"name":"","city":"San Francisco","state":"XX","address":"1 Main","phone":"1231231234",
		"genres":["Jazz","Polka"],"facebook_link":"https://twitter.com/hop"}`
	code, env := do(t, r, http.MethodPost, "/api/v1/venues", body)

	require.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "name")
	assert.Contains(t, env.Error.Details, "state")
	assert.Contains(t, env.Error.Details, "phone")
	assert.Contains(t, env.Error.Details, "genres[1]")
	assert.Contains(t, env.Error.Details, "facebook_link")

	var n int64
	require.NoError(t, db.Model(&domain.Venue{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateVenue_MalformedBody(t *testing.T) {
	r, _ := setup(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/venues", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
}

func TestEditVenue(t *testing.T) {
	r, db := setup(t)
	venue := testutil.Venue("The Musical Hop", "San Francisco", "CA")
	testutil.MustCreate(t, db, venue)
	path := "/api/v1/venues/" + strconv.FormatInt(venue.ID, 10)

	code, env := do(t, r, http.MethodGet, path+"/edit", "")
	require.Equal(t, http.StatusOK, code)
	var loaded domain.Venue
	require.NoError(t, json.Unmarshal(env.Data, &loaded))
	assert.Equal(t, "The Musical Hop", loaded.Name)

	edited := strings.Replace(musicalHop, `"seeking_talent": true`, `"seeking_talent": false`, 1)
	edited = strings.Replace(edited, "The Musical Hop", "The Musical Hop II", 1)
	code, _ = do(t, r, http.MethodPut, path, edited)
	require.Equal(t, http.StatusOK, code)

	var stored domain.Venue
	require.NoError(t, db.First(&stored, venue.ID).Error)
	assert.Equal(t, "The Musical Hop II", stored.Name)
	assert.False(t, stored.SeekingTalent)
	assert.Equal(t, "https://www.themusicalhop.com", stored.Website)
}

func TestEditVenue_NotFound(t *testing.T) {
	r, _ := setup(t)

	code, env := do(t, r, http.MethodGet, "/api/v1/venues/77/edit", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	code, env = do(t, r, http.MethodPut, "/api/v1/venues/77", musicalHop)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)

	code, env = do(t, r, http.MethodPut, "/api/v1/venues/zero", musicalHop)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "INVALID_ID", env.Error.Code)
}

func TestDeleteVenue(t *testing.T) {
	r, db := setup(t)
	venue := testutil.Venue("The Musical Hop", "San Francisco", "CA")
	testutil.MustCreate(t, db, venue)
	artist := testutil.Artist("Guns N Petals", domain.Availability{
		DayOfWeek: domain.Tuesday,
		StartTime: domain.MustTimeOfDay("18:00"),
		EndTime:   domain.MustTimeOfDay("23:30"),
	})
	testutil.MustCreate(t, db, artist)
	testutil.MustCreate(t, db, testutil.Show(venue.ID, artist.ID, time.Date(2035, 4, 3, 20, 0, 0, 0, time.UTC)))
	path := "/api/v1/venues/" + strconv.FormatInt(venue.ID, 10)

	code, env := do(t, r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	var shows int64
	require.NoError(t, db.Model(&domain.Show{}).Count(&shows).Error)
	assert.Zero(t, shows)

	code, env = do(t, r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
