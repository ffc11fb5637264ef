package artist

import (
	"fmt"

	"fyyur/internal/domain"
)

var ErrArtistNotFound = fmt.Errorf("artist %w", domain.ErrNotFound)
