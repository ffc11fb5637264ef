package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"fyyur/internal/database"
	"fyyur/internal/domain"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := database.Connect(dsn, database.WithLogLevel(gormlogger.Silent))
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func MustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}

func Venue(name, city, state string) *domain.Venue {
	return &domain.Venue{
		Name:    name,
		Address: "1015 Folsom Street",
		City:    city,
		State:   state,
		Phone:   "123-123-1234",
		Genres:  domain.Genres{"Jazz"},
	}
}

func Artist(name string, windows ...domain.Availability) *domain.Artist {
	return &domain.Artist{
		Name:           name,
		City:           "San Francisco",
		State:          "CA",
		Phone:          "326-123-5000",
		Genres:         domain.Genres{"Rock n Roll"},
		Availabilities: windows,
	}
}

func Show(venueID, artistID int64, start time.Time) *domain.Show {
	return &domain.Show{VenueID: venueID, ArtistID: artistID, StartTime: start.UTC()}
}
