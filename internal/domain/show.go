package domain

import "time"

type Show struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	VenueID   int64     `json:"venue_id" gorm:"not null;index"`
	ArtistID  int64     `json:"artist_id" gorm:"not null;index"`
	StartTime time.Time `json:"start_time" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	Venue  *Venue  `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

func (Show) TableName() string {
	return "shows"
}

// FormatShowTime renders a start time for clients. Milliseconds are always .000.
func FormatShowTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + ".000Z"
}

// IsUpcoming is the single past/upcoming boundary: shows starting exactly at now are upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

func PartitionShows(shows []Show, now time.Time) (past, upcoming []Show) {
	past = make([]Show, 0)
	upcoming = make([]Show, 0)
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}
