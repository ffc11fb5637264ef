package database

import (
	"fmt"

	"fyyur/internal/domain"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Venue{},
		&domain.Artist{},
		&domain.Availability{},
		&domain.Show{},
	); err != nil {
		return err
	}
	return backfillSearchNames(db)
}

type namedRow struct {
	ID   int64
	Name string
}

// backfillSearchNames fills search_name on rows written before the column existed.
func backfillSearchNames(db *gorm.DB) error {
	for _, model := range []any{&domain.Venue{}, &domain.Artist{}} {
		var rows []namedRow
		if err := db.Model(model).
			Select("id, name").
			Where("search_name = '' AND name <> ''").
			Scan(&rows).Error; err != nil {
			return fmt.Errorf("backfill search names: %w", err)
		}
		for _, row := range rows {
			if err := db.Model(model).
				Where("id = ?", row.ID).
				UpdateColumn("search_name", domain.SearchKey(row.Name)).Error; err != nil {
				return fmt.Errorf("backfill search names: %w", err)
			}
		}
	}
	return nil
}
