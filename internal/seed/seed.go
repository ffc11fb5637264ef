package seed

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/database"
	"fyyur/internal/domain"
	"fyyur/internal/modules/scheduling"
	"fyyur/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Summary struct {
	Venues  int
	Artists int
	Shows   int
}

type showSeed struct {
	venue  int // index into venues()
	artist int // index into artists()
	start  time.Time
}

// Run replaces the directory contents with the sample data set.
func Run(ctx context.Context, db *gorm.DB) (Summary, error) {
	venues := venues()
	artists := artists()
	shows := []showSeed{
		{venue: 0, artist: 0, start: time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC)},
		{venue: 2, artist: 1, start: time.Date(2019, time.June, 15, 23, 0, 0, 0, time.UTC)},
		{venue: 2, artist: 2, start: time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)},
		{venue: 2, artist: 2, start: time.Date(2035, time.April, 8, 20, 0, 0, 0, time.UTC)},
		{venue: 2, artist: 2, start: time.Date(2035, time.April, 15, 20, 0, 0, 0, time.UTC)},
	}

	err := database.Transact(ctx, db, func(tx *gorm.DB) error {
		// Cleanup in foreign key order.
		for _, model := range []any{&domain.Show{}, &domain.Availability{}, &domain.Artist{}, &domain.Venue{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		venueRepo := repository.NewVenueRepository(tx)
		for i := range venues {
			if err := venueRepo.Create(ctx, &venues[i]); err != nil {
				return err
			}
		}
		artistRepo := repository.NewArtistRepository(tx)
		for i := range artists {
			if err := artistRepo.Create(ctx, &artists[i]); err != nil {
				return err
			}
		}

		showRepo := repository.NewShowRepository(tx)
		for _, s := range shows {
			a := artists[s.artist]
			if d := scheduling.Decide(a.Availabilities, s.start); !d.Admitted {
				return fmt.Errorf("seed show for %s at %s: %w", a.Name, s.start, d.Err())
			}
			show := &domain.Show{VenueID: venues[s.venue].ID, ArtistID: a.ID, StartTime: s.start}
			if err := showRepo.Create(ctx, show); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Venues: len(venues), Artists: len(artists), Shows: len(shows)}
	zerolog.Ctx(ctx).Info().
		Int("venues", sum.Venues).
		Int("artists", sum.Artists).
		Int("shows", sum.Shows).
		Msg("seed data loaded")
	return sum, nil
}

func venues() []domain.Venue {
	return []domain.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			Genres:             domain.Genres{"Jazz", "Reggae", "Classical", "Folk"},
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5",
			Website:            "https://www.themusicalhop.com",
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			Genres:       domain.Genres{"Classical", "R&B", "Hip-Hop"},
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae",
			Website:      "https://www.theduelingpianos.com",
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			Genres:       domain.Genres{"Rock n Roll", "Jazz", "Classical", "Folk"},
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
		},
	}
}

func artists() []domain.Artist {
	w := func(day domain.Weekday, start, end string) domain.Availability {
		return domain.Availability{DayOfWeek: day, StartTime: domain.MustTimeOfDay(start), EndTime: domain.MustTimeOfDay(end)}
	}
	return []domain.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			Genres:             domain.Genres{"Rock n Roll"},
			Website:            "https://www.gunsnpetalsband.com",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300&q=80",
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
			Availabilities:     []domain.Availability{w(domain.Tuesday, "18:00", "23:30")},
		},
		{
			Name:           "Matt Quevedo",
			City:           "New York",
			State:          "NY",
			Phone:          "300-400-5000",
			Genres:         domain.Genres{"Jazz"},
			FacebookLink:   "https://www.facebook.com/mattquevedo923251523",
			ImageLink:      "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334&q=80",
			Availabilities: []domain.Availability{w(domain.Saturday, "20:00", "23:59")},
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			Genres:    domain.Genres{"Jazz", "Classical"},
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794&q=80",
			Availabilities: []domain.Availability{
				w(domain.Friday, "19:00", "23:00"),
				w(domain.Sunday, "18:00", "23:00"),
			},
		},
	}
}
