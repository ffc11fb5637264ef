package artist

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fyyur/internal/database"
	"fyyur/internal/domain"
	"fyyur/internal/pkg/validator"
	"fyyur/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores the artist together with its weekly availability windows.
// At least one window is required.
func (s *Service) Create(ctx context.Context, req ArtistRequest) (*domain.Artist, error) {
	req = normalize(req)
	fields := validator.Validate(req)
	windows, windowErrs := parseWindows(req.Availabilities)
	if len(req.Availabilities) == 0 {
		windowErrs["availabilities"] = "at least one availability window is required"
	}
	fields = merge(fields, windowErrs)
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	artist := &domain.Artist{Availabilities: windows}
	req.applyTo(artist)

	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		return repository.NewArtistRepository(tx).Create(ctx, artist)
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("artist_id", artist.ID).
		Int("windows", len(artist.Availabilities)).
		Msg("artist created")
	return artist, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Artist, error) {
	var artist *domain.Artist
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		artist, err = repository.NewArtistRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, notFound(err)
	}
	return artist, nil
}

// Update edits profile fields. Availability windows in the request are ignored.
func (s *Service) Update(ctx context.Context, id int64, req ArtistRequest) (*domain.Artist, error) {
	req = normalize(req)
	req.Availabilities = nil
	if fields := validator.Validate(req); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	var artist *domain.Artist
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		repo := repository.NewArtistRepository(tx)
		var err error
		artist, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		req.applyTo(artist)
		return repo.Update(ctx, artist)
	})
	if err != nil {
		return nil, notFound(err)
	}

	zerolog.Ctx(ctx).Info().Int64("artist_id", id).Msg("artist updated")
	return artist, nil
}

// parseWindows converts the inputs that passed tag validation and checks
// that each window starts no later than it ends.
func parseWindows(inputs []AvailabilityInput) ([]domain.Availability, map[string]string) {
	errs := make(map[string]string)
	windows := make([]domain.Availability, 0, len(inputs))
	for i, in := range inputs {
		if in.DayOfWeek == nil {
			continue
		}
		start, err1 := domain.ParseTimeOfDay(in.StartTime)
		end, err2 := domain.ParseTimeOfDay(in.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		if start > end {
			errs[fmt.Sprintf("availabilities[%d].end_time", i)] = "must not be before start_time"
			continue
		}
		windows = append(windows, domain.Availability{
			DayOfWeek: domain.Weekday(*in.DayOfWeek),
			StartTime: start,
			EndTime:   end,
		})
	}
	return windows, errs
}

func merge(a, b map[string]string) map[string]string {
	if len(b) == 0 {
		return a
	}
	if a == nil {
		a = make(map[string]string, len(b))
	}
	for k, v := range b {
		if _, exists := a[k]; !exists {
			a[k] = v
		}
	}
	return a
}

func normalize(req ArtistRequest) ArtistRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.ToUpper(strings.TrimSpace(req.State))
	req.Phone = strings.TrimSpace(req.Phone)
	req.ImageLink = strings.TrimSpace(req.ImageLink)
	req.Website = strings.TrimSpace(req.Website)
	req.FacebookLink = strings.TrimSpace(req.FacebookLink)
	return req
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrArtistNotFound
	}
	return err
}
