package show

import (
	"time"

	"fyyur/internal/domain"
	"fyyur/internal/modules/scheduling"
)

type CreateShowRequest struct {
	ArtistID  int64     `json:"artist_id" validate:"required,gt=0"`
	VenueID   int64     `json:"venue_id" validate:"required,gt=0"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

// Outcome carries the scheduling decision and, when admitted, the stored show.
type Outcome struct {
	Decision scheduling.Decision
	Show     *domain.Show
}

type ShowResponse struct {
	ID        int64  `json:"id"`
	VenueID   int64  `json:"venue_id"`
	ArtistID  int64  `json:"artist_id"`
	StartTime string `json:"start_time"`
}

type CreateShowResponse struct {
	Admitted bool              `json:"admitted"`
	Reason   scheduling.Reason `json:"reason,omitempty"`
	Show     *ShowResponse     `json:"show,omitempty"`
}

func newCreateShowResponse(o Outcome) CreateShowResponse {
	resp := CreateShowResponse{Admitted: o.Decision.Admitted, Reason: o.Decision.Reason}
	if o.Show != nil {
		resp.Show = &ShowResponse{
			ID:        o.Show.ID,
			VenueID:   o.Show.VenueID,
			ArtistID:  o.Show.ArtistID,
			StartTime: domain.FormatShowTime(o.Show.StartTime),
		}
	}
	return resp
}
