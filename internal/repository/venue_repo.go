package repository

import (
	"context"

	"fyyur/internal/database"
	"fyyur/internal/domain"

	"gorm.io/gorm"
)

// venueColumns are the columns an edit may overwrite.
var venueColumns = []string{
	"name", "search_name", "address", "city", "state", "phone", "genres", "image_link",
	"website", "facebook_link", "seeking_talent", "seeking_description", "updated_at",
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	return database.Classify(r.db.WithContext(ctx).Create(venue).Error)
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var venue domain.Venue
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&venue).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return &venue, nil
}

func (r *VenueRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Venue{}).
		Where("id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, database.Classify(err)
	}
	return n > 0, nil
}

// Update writes every editable column, zero values included.
func (r *VenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	venue.SearchName = domain.SearchKey(venue.Name)
	res := r.db.WithContext(ctx).
		Model(venue).
		Select(venueColumns).
		Updates(venue)
	if res.Error != nil {
		return database.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the venue together with its shows. Call it inside a transaction.
func (r *VenueRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("venue_id = ?", id).Delete(&domain.Show{}).Error; err != nil {
		return database.Classify(err)
	}
	res := db.Delete(&domain.Venue{}, id)
	if res.Error != nil {
		return database.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns every venue in insertion order.
func (r *VenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&venues).Error
	return venues, database.Classify(err)
}

func (r *VenueRepository) Search(ctx context.Context, term string) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Where(nameSearchClause, namePattern(term)).
		Order("id").
		Find(&venues).Error
	return venues, database.Classify(err)
}
