package events

import (
	"context"
	"time"
)

// ShowScheduled is emitted after a show has been committed.
type ShowScheduled struct {
	ShowID      int64     `json:"show_id"`
	VenueID     int64     `json:"venue_id"`
	ArtistID    int64     `json:"artist_id"`
	StartTime   string    `json:"start_time"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

type Publisher interface {
	PublishShowScheduled(ctx context.Context, event ShowScheduled) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishShowScheduled(context.Context, ShowScheduled) error {
	return nil
}
