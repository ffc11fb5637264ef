package repository

import (
	"context"

	"fyyur/internal/database"
	"fyyur/internal/domain"

	"gorm.io/gorm"
)

var artistColumns = []string{
	"name", "search_name", "city", "state", "phone", "genres", "image_link",
	"website", "facebook_link", "seeking_venue", "seeking_description", "updated_at",
}

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// Create inserts the artist and its availability windows.
func (r *ArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	return database.Classify(r.db.WithContext(ctx).Create(artist).Error)
}

func (r *ArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	var artist domain.Artist
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Availabilities", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week, start_time, id")
		}).
		First(&artist).Error
	if err != nil {
		return nil, database.Classify(err)
	}
	return &artist, nil
}

// Update leaves availability windows alone.
func (r *ArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	artist.SearchName = domain.SearchKey(artist.Name)
	res := r.db.WithContext(ctx).
		Model(artist).
		Select(artistColumns).
		Updates(artist)
	if res.Error != nil {
		return database.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns every artist ordered by name.
func (r *ArtistRepository) List(ctx context.Context) ([]domain.Artist, error) {
	var artists []domain.Artist
	err := r.db.WithContext(ctx).
		Order("name, id").
		Find(&artists).Error
	return artists, database.Classify(err)
}

func (r *ArtistRepository) Search(ctx context.Context, term string) ([]domain.Artist, error) {
	var artists []domain.Artist
	err := r.db.WithContext(ctx).
		Where(nameSearchClause, namePattern(term)).
		Order("id").
		Find(&artists).Error
	return artists, database.Classify(err)
}
