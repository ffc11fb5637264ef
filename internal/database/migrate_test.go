package database

import (
	"testing"

	"fyyur/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestMigrate_BackfillsSearchNames(t *testing.T) {
	db, err := Connect("file:migrate_backfill_test?mode=memory&cache=shared", WithLogLevel(gormlogger.Silent))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	require.NoError(t, db.Exec(
		`INSERT INTO venues (name, address, city, state, phone, genres, seeking_talent, search_name)
		 VALUES ('CAFÉ Órbita', '1 Main', 'Austin', 'TX', '123-123-1234', '["Jazz"]', false, '')`).Error)
	require.NoError(t, db.Exec(
		`INSERT INTO artists (name, city, state, phone, genres, seeking_venue, search_name)
		 VALUES ('Ñandú Trío', 'Austin', 'TX', '123-123-1234', '["Jazz"]', false, '')`).Error)

	require.NoError(t, Migrate(db))

	var venueKey, artistKey string
	require.NoError(t, db.Model(&domain.Venue{}).Select("search_name").Where("name = ?", "CAFÉ Órbita").Scan(&venueKey).Error)
	require.NoError(t, db.Model(&domain.Artist{}).Select("search_name").Where("name = ?", "Ñandú Trío").Scan(&artistKey).Error)
	assert.Equal(t, "café órbita", venueKey)
	assert.Equal(t, "ñandú trío", artistKey)
}
