package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenres_LegacyForms(t *testing.T) {
	want := Genres{"Jazz", "R&B", "Rock n Roll"}

	assert.Equal(t, want, ParseGenres(`["Jazz","R&B","Rock n Roll"]`))
	assert.Equal(t, want, ParseGenres(`{Jazz,"R&B","Rock n Roll"}`))
	assert.Equal(t, want, ParseGenres(`Jazz, R&B, Rock n Roll`))
	assert.Equal(t, want, ParseGenres(`Jazz,Jazz, ,R&B,Rock n Roll`))
	assert.Equal(t, Genres{}, ParseGenres(""))
}

func TestGenres_UnmarshalJSON(t *testing.T) {
	var fromList, fromString Genres
	require.NoError(t, json.Unmarshal([]byte(`["Jazz","Folk","Jazz"]`), &fromList))
	require.NoError(t, json.Unmarshal([]byte(`"{Jazz,Folk}"`), &fromString))

	assert.Equal(t, Genres{"Jazz", "Folk"}, fromList)
	assert.Equal(t, fromList, fromString)
}

func TestGenres_StoreRoundTrip(t *testing.T) {
	g := Genres{"Hip-Hop", "R&B"}

	v, err := g.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Hip-Hop","R&B"]`, v)

	var scanned Genres
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, g, scanned)

	var nilGenres Genres
	v, err = nilGenres.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestIsGenreAndState(t *testing.T) {
	assert.True(t, IsGenre("Musical Theatre"))
	assert.False(t, IsGenre("Swing"))
	assert.False(t, IsGenre("jazz"))
	assert.Len(t, GenreChoices(), 19)

	assert.True(t, IsState("DC"))
	assert.False(t, IsState("XX"))
	assert.Len(t, StateChoices(), 51)
}
