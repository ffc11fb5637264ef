package show

import (
	"fmt"

	"fyyur/internal/domain"
)

var ErrVenueNotFound = fmt.Errorf("venue %w", domain.ErrNotFound)
