package scheduling

import (
	"fmt"

	"fyyur/internal/domain"
)

var (
	ErrArtistNotFound = fmt.Errorf("artist %w", domain.ErrNotFound)
	ErrNotAvailable   = fmt.Errorf("show cannot be scheduled: %w", domain.ErrNotAvailable)
)
