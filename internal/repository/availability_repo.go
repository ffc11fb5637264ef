package repository

import (
	"context"

	"fyyur/internal/database"
	"fyyur/internal/domain"

	"gorm.io/gorm"
)

// AvailabilityRepository reads an artist's weekly windows straight from the
// store, so every call reflects the current state.
type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) ArtistExists(ctx context.Context, artistID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Artist{}).
		Where("id = ?", artistID).
		Count(&n).Error
	if err != nil {
		return false, database.Classify(err)
	}
	return n > 0, nil
}

func (r *AvailabilityRepository) WindowsFor(ctx context.Context, artistID int64) ([]domain.Availability, error) {
	var windows []domain.Availability
	err := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("day_of_week, start_time, id").
		Find(&windows).Error
	return windows, database.Classify(err)
}
