package directory

import (
	"context"
	"sort"
	"time"

	"fyyur/internal/database"
	"fyyur/internal/domain"
	"fyyur/internal/repository"

	"gorm.io/gorm"
)

// Service answers read-only directory queries. Every method takes now from
// the caller so one request uses a single past/upcoming boundary.
type Service struct {
	db    *gorm.DB
	clock func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, clock: time.Now}
}

// Now is read once per request by the handler.
func (s *Service) Now() time.Time {
	return s.clock()
}

// ListVenues groups venues by exact (city, state), groups in lexicographic
// order and venues in store order.
func (s *Service) ListVenues(ctx context.Context, now time.Time) ([]Area, error) {
	var (
		venues []domain.Venue
		counts map[int64]int64
	)
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if venues, err = repository.NewVenueRepository(tx).List(ctx); err != nil {
			return err
		}
		counts, err = repository.NewShowRepository(tx).CountUpcomingByVenue(ctx, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	type areaKey struct{ city, state string }
	index := make(map[areaKey]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		k := areaKey{v.City, v.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}

	sort.SliceStable(areas, func(i, j int) bool {
		if areas[i].City != areas[j].City {
			return areas[i].City < areas[j].City
		}
		return areas[i].State < areas[j].State
	})
	return areas, nil
}

// SearchVenues matches a case-insensitive substring of the name. An empty
// term matches every venue.
func (s *Service) SearchVenues(ctx context.Context, term string, now time.Time) (SearchResult, error) {
	var (
		venues []domain.Venue
		counts map[int64]int64
	)
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if venues, err = repository.NewVenueRepository(tx).Search(ctx, term); err != nil {
			return err
		}
		counts, err = repository.NewShowRepository(tx).CountUpcomingByVenue(ctx, now)
		return err
	})
	if err != nil {
		return EmptySearch(), err
	}

	result := SearchResult{Count: len(venues), Data: make([]Summary, 0, len(venues))}
	for _, v := range venues {
		result.Data = append(result.Data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]})
	}
	return result, nil
}

func (s *Service) SearchArtists(ctx context.Context, term string, now time.Time) (SearchResult, error) {
	var (
		artists []domain.Artist
		counts  map[int64]int64
	)
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if artists, err = repository.NewArtistRepository(tx).Search(ctx, term); err != nil {
			return err
		}
		counts, err = repository.NewShowRepository(tx).CountUpcomingByArtist(ctx, now)
		return err
	})
	if err != nil {
		return EmptySearch(), err
	}

	result := SearchResult{Count: len(artists), Data: make([]Summary, 0, len(artists))}
	for _, a := range artists {
		result.Data = append(result.Data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]})
	}
	return result, nil
}

func (s *Service) VenueDetail(ctx context.Context, id int64, now time.Time) (*VenueDetail, error) {
	var (
		venue *domain.Venue
		shows []domain.Show
	)
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if venue, err = repository.NewVenueRepository(tx).GetByID(ctx, id); err != nil {
			return err
		}
		shows, err = repository.NewShowRepository(tx).ListByVenue(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	past, upcoming := domain.PartitionShows(shows, now)
	detail := &VenueDetail{
		Venue:              *venue,
		PastShows:          artistShows(past),
		UpcomingShows:      artistShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return detail, nil
}

func (s *Service) ArtistDetail(ctx context.Context, id int64, now time.Time) (*ArtistDetail, error) {
	var (
		artist *domain.Artist
		shows  []domain.Show
	)
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if artist, err = repository.NewArtistRepository(tx).GetByID(ctx, id); err != nil {
			return err
		}
		shows, err = repository.NewShowRepository(tx).ListByArtist(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	past, upcoming := domain.PartitionShows(shows, now)
	detail := &ArtistDetail{
		Artist:             *artist,
		PastShows:          venueShows(past),
		UpcomingShows:      venueShows(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return detail, nil
}

// ListArtists returns every artist ordered by name.
func (s *Service) ListArtists(ctx context.Context) ([]ArtistListing, error) {
	var artists []domain.Artist
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		artists, err = repository.NewArtistRepository(tx).List(ctx)
		return err
	})
	if err != nil {
		return []ArtistListing{}, err
	}

	out := make([]ArtistListing, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistListing{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

// ListShows returns every show ordered by start time.
func (s *Service) ListShows(ctx context.Context) ([]ShowListing, error) {
	var shows []domain.Show
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		shows, err = repository.NewShowRepository(tx).ListAll(ctx)
		return err
	})
	if err != nil {
		return []ShowListing{}, err
	}

	out := make([]ShowListing, 0, len(shows))
	for _, sh := range shows {
		row := ShowListing{
			VenueID:   sh.VenueID,
			ArtistID:  sh.ArtistID,
			StartTime: domain.FormatShowTime(sh.StartTime),
		}
		if sh.Venue != nil {
			row.VenueName = sh.Venue.Name
		}
		if sh.Artist != nil {
			row.ArtistName = sh.Artist.Name
			row.ArtistImageLink = sh.Artist.ImageLink
		}
		out = append(out, row)
	}
	return out, nil
}

func EmptySearch() SearchResult {
	return SearchResult{Count: 0, Data: []Summary{}}
}

func artistShows(shows []domain.Show) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, sh := range shows {
		row := ArtistShow{ArtistID: sh.ArtistID, StartTime: domain.FormatShowTime(sh.StartTime)}
		if sh.Artist != nil {
			row.ArtistName = sh.Artist.Name
			row.ArtistImageLink = sh.Artist.ImageLink
		}
		out = append(out, row)
	}
	return out
}

func venueShows(shows []domain.Show) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, sh := range shows {
		row := VenueShow{VenueID: sh.VenueID, StartTime: domain.FormatShowTime(sh.StartTime)}
		if sh.Venue != nil {
			row.VenueName = sh.Venue.Name
			row.VenueImageLink = sh.Venue.ImageLink
		}
		out = append(out, row)
	}
	return out
}
