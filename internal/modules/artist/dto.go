package artist

import "fyyur/internal/domain"

const maxAvailabilityWindows = 20

type AvailabilityInput struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,timeofday"`
	EndTime   string `json:"end_time" validate:"required,timeofday"`
}

// ArtistRequest is the body for creating and editing an artist.
// Availabilities are read on create only.
type ArtistRequest struct {
	Name               string              `json:"name" validate:"required,max=120"`
	City               string              `json:"city" validate:"required,max=120"`
	State              string              `json:"state" validate:"required,usstate"`
	Phone              string              `json:"phone" validate:"required,phone"`
	Genres             domain.Genres       `json:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string              `json:"image_link" validate:"omitempty,url,max=500"`
	Website            string              `json:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string              `json:"facebook_link" validate:"omitempty,url,facebook,max=500"`
	SeekingVenue       bool                `json:"seeking_venue"`
	SeekingDescription string              `json:"seeking_description"`
	Availabilities     []AvailabilityInput `json:"availabilities" validate:"omitempty,max=20,dive"`
}

func (r ArtistRequest) applyTo(a *domain.Artist) {
	a.Name = r.Name
	a.City = r.City
	a.State = r.State
	a.Phone = r.Phone
	a.Genres = r.Genres
	a.ImageLink = r.ImageLink
	a.Website = r.Website
	a.FacebookLink = r.FacebookLink
	a.SeekingVenue = r.SeekingVenue
	a.SeekingDescription = r.SeekingDescription
}
