package repository

import (
	"context"
	"time"

	"fyyur/internal/database"
	"fyyur/internal/domain"

	"gorm.io/gorm"
)

type ShowRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// Create stores the start time in UTC; the instant is unchanged.
func (r *ShowRepository) Create(ctx context.Context, show *domain.Show) error {
	show.StartTime = show.StartTime.UTC()
	return database.Classify(r.db.WithContext(ctx).Create(show).Error)
}

func (r *ShowRepository) ListByVenue(ctx context.Context, venueID int64) ([]domain.Show, error) {
	var shows []domain.Show
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Preload("Artist").
		Order("start_time, id").
		Find(&shows).Error
	return shows, database.Classify(err)
}

func (r *ShowRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.Show, error) {
	var shows []domain.Show
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Preload("Venue").
		Order("start_time, id").
		Find(&shows).Error
	return shows, database.Classify(err)
}

func (r *ShowRepository) ListAll(ctx context.Context) ([]domain.Show, error) {
	var shows []domain.Show
	err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Order("start_time, id").
		Find(&shows).Error
	return shows, database.Classify(err)
}

type upcomingCount struct {
	OwnerID int64
	Total   int64
}

// CountUpcomingByVenue maps venue id to the number of shows starting at or after now.
func (r *ShowRepository) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int64]int64, error) {
	return r.countUpcoming(ctx, "venue_id", now)
}

func (r *ShowRepository) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int64]int64, error) {
	return r.countUpcoming(ctx, "artist_id", now)
}

func (r *ShowRepository) countUpcoming(ctx context.Context, column string, now time.Time) (map[int64]int64, error) {
	var rows []upcomingCount
	err := r.db.WithContext(ctx).
		Model(&domain.Show{}).
		Select(column+" AS owner_id, COUNT(*) AS total").
		Where("start_time >= ?", now.UTC()).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	counts := make(map[int64]int64, len(rows))
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}
