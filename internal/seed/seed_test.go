package seed

import (
	"context"
	"testing"
	"time"

	"fyyur/internal/domain"
	"fyyur/internal/modules/artist"
	"fyyur/internal/modules/venue"
	"fyyur/internal/pkg/testutil"
	"fyyur/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_LoadsSampleData(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	sum, err := Run(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, Summary{Venues: 3, Artists: 3, Shows: 5}, sum)

	artist, err := repository.NewArtistRepository(db).GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "The Wild Sax Band", artist.Name)
	assert.Len(t, artist.Availabilities, 2)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	counts, err := repository.NewShowRepository(db).CountUpcomingByVenue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, map[int64]int64{3: 3}, counts)
}

func TestRun_ReplacesExistingRows(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	testutil.MustCreate(t, db, testutil.Venue("Leftover", "Austin", "TX"))

	_, err := Run(ctx, db)
	require.NoError(t, err)
	_, err = Run(ctx, db)
	require.NoError(t, err)

	var venues, shows int64
	require.NoError(t, db.Model(&domain.Venue{}).Count(&venues).Error)
	require.NoError(t, db.Model(&domain.Show{}).Count(&shows).Error)
	assert.EqualValues(t, 3, venues)
	assert.EqualValues(t, 5, shows)

	var leftover int64
	require.NoError(t, db.Model(&domain.Venue{}).Where("name = ?", "Leftover").Count(&leftover).Error)
	assert.Zero(t, leftover)
}

func TestRun_RecordsPassEditValidation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	_, err := Run(ctx, db)
	require.NoError(t, err)

	var venues []domain.Venue
	require.NoError(t, db.Order("id").Find(&venues).Error)
	venueService := venue.NewService(db)
	for _, v := range venues {
		for _, g := range v.Genres {
			assert.True(t, domain.IsGenre(string(g)), "%s: %s", v.Name, g)
		}
		_, err := venueService.Update(ctx, v.ID, venue.VenueRequest{
			Name:               v.Name,
			City:               v.City,
			State:              v.State,
			Address:            v.Address,
			Phone:              v.Phone,
			Genres:             v.Genres,
			ImageLink:          v.ImageLink,
			Website:            v.Website,
			FacebookLink:       v.FacebookLink,
			SeekingTalent:      v.SeekingTalent,
			SeekingDescription: v.SeekingDescription,
		})
		assert.NoError(t, err, v.Name)
	}

	var artists []domain.Artist
	require.NoError(t, db.Order("id").Find(&artists).Error)
	artistService := artist.NewService(db)
	for _, a := range artists {
		_, err := artistService.Update(ctx, a.ID, artist.ArtistRequest{
			Name:               a.Name,
			City:               a.City,
			State:              a.State,
			Phone:              a.Phone,
			Genres:             a.Genres,
			ImageLink:          a.ImageLink,
			Website:            a.Website,
			FacebookLink:       a.FacebookLink,
			SeekingVenue:       a.SeekingVenue,
			SeekingDescription: a.SeekingDescription,
		})
		assert.NoError(t, err, a.Name)
	}
}
