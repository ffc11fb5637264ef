package show

import (
	"context"
	"time"

	"fyyur/internal/database"
	"fyyur/internal/domain"
	"fyyur/internal/events"
	"fyyur/internal/modules/scheduling"
	"fyyur/internal/pkg/validator"
	"fyyur/internal/repository"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const publishTimeout = 3 * time.Second

type Service struct {
	db        *gorm.DB
	publisher events.Publisher
	now       func() time.Time
}

func NewService(db *gorm.DB, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Service{db: db, publisher: publisher, now: time.Now}
}

// Create schedules a show if the artist is available at its start time.
// The availability check and the insert share one transaction, so a
// rejection or a failed insert leaves the store untouched.
//
// Rejections return the decision in Outcome together with the matching
// sentinel error.
func (s *Service) Create(ctx context.Context, req CreateShowRequest) (Outcome, error) {
	if fields := validator.Validate(req); fields != nil {
		return Outcome{}, domain.NewValidationError(fields)
	}

	var out Outcome
	err := database.Transact(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := repository.NewVenueRepository(tx).Exists(ctx, req.VenueID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrVenueNotFound
		}

		av := scheduling.NewValidator(repository.NewAvailabilityRepository(tx))
		out.Decision, err = av.Validate(ctx, req.ArtistID, req.StartTime)
		if err != nil {
			return err
		}
		if !out.Decision.Admitted {
			return out.Decision.Err()
		}

		show := &domain.Show{
			VenueID:   req.VenueID,
			ArtistID:  req.ArtistID,
			StartTime: req.StartTime,
		}
		if err := repository.NewShowRepository(tx).Create(ctx, show); err != nil {
			return err
		}
		out.Show = show
		return nil
	})

	logger := zerolog.Ctx(ctx)
	if err != nil {
		out.Show = nil
		logger.Info().
			Err(err).
			Int64("artist_id", req.ArtistID).
			Int64("venue_id", req.VenueID).
			Str("reason", string(out.Decision.Reason)).
			Msg("show not scheduled")
		return out, err
	}

	logger.Info().
		Int64("show_id", out.Show.ID).
		Int64("artist_id", req.ArtistID).
		Int64("venue_id", req.VenueID).
		Msg("show scheduled")
	s.publish(ctx, out.Show)
	return out, nil
}

// publish runs after commit; a broker failure never undoes the show.
func (s *Service) publish(ctx context.Context, show *domain.Show) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.ShowScheduled{
		ShowID:      show.ID,
		VenueID:     show.VenueID,
		ArtistID:    show.ArtistID,
		StartTime:   domain.FormatShowTime(show.StartTime),
		ScheduledAt: s.now().UTC(),
	}
	if err := s.publisher.PublishShowScheduled(pctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int64("show_id", show.ID).Msg("show.scheduled event not published")
	}
}
