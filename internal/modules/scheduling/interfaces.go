package scheduling

import (
	"context"

	"fyyur/internal/domain"
)

// AvailabilityIndex is a per-artist view of availability windows.
type AvailabilityIndex interface {
	ArtistExists(ctx context.Context, artistID int64) (bool, error)
	WindowsFor(ctx context.Context, artistID int64) ([]domain.Availability, error)
}
