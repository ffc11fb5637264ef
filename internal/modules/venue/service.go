package venue

import (
	"context"
	"errors"
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

func (s *Service) Create(ctx context.Context, req VenueRequest) (*domain.Venue, error) {
	req = normalize(req)
	if fields := validator.Validate(req); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	venue := &domain.Venue{}
	req.applyTo(venue)

	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		return repository.NewVenueRepository(tx).Create(ctx, venue)
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("venue_id", venue.ID).Str("name", venue.Name).Msg("venue created")
	return venue, nil
}

// Get returns the stored record, as shown on the edit form.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Venue, error) {
	var venue *domain.Venue
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		venue, err = repository.NewVenueRepository(tx).GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, notFound(err)
	}
	return venue, nil
}

func (s *Service) Update(ctx context.Context, id int64, req VenueRequest) (*domain.Venue, error) {
	req = normalize(req)
	if fields := validator.Validate(req); fields != nil {
		return nil, domain.NewValidationError(fields)
	}

	var venue *domain.Venue
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		repo := repository.NewVenueRepository(tx)
		var err error
		venue, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		req.applyTo(venue)
		return repo.Update(ctx, venue)
	})
	if err != nil {
		return nil, notFound(err)
	}

	zerolog.Ctx(ctx).Info().Int64("venue_id", id).Msg("venue updated")
	return venue, nil
}

// Delete removes the venue and every show it hosts.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		return repository.NewVenueRepository(tx).Delete(ctx, id)
	})
	if err != nil {
		return notFound(err)
	}

	zerolog.Ctx(ctx).Info().Int64("venue_id", id).Msg("venue deleted")
	return nil
}

func normalize(req VenueRequest) VenueRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.ToUpper(strings.TrimSpace(req.State))
	req.Address = strings.TrimSpace(req.Address)
	req.Phone = strings.TrimSpace(req.Phone)
	req.ImageLink = strings.TrimSpace(req.ImageLink)
	req.Website = strings.TrimSpace(req.Website)
	req.FacebookLink = strings.TrimSpace(req.FacebookLink)
	return req
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return ErrVenueNotFound
	}
	return err
}
