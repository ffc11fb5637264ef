package venue

import "fyyur/internal/domain"

// VenueRequest is the body for both creating and editing a venue.
type VenueRequest struct {
	Name               string        `json:"name" validate:"required,max=120"`
	City               string        `json:"city" validate:"required,max=120"`
	State              string        `json:"state" validate:"required,usstate"`
	Address            string        `json:"address" validate:"required,max=120"`
	Phone              string        `json:"phone" validate:"required,phone"`
	Genres             domain.Genres `json:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string        `json:"image_link" validate:"omitempty,url,max=500"`
	Website            string        `json:"website" validate:"omitempty,url,max=500"`
	FacebookLink       string        `json:"facebook_link" validate:"omitempty,url,facebook,max=500"`
	SeekingTalent      bool          `json:"seeking_talent"`
	SeekingDescription string        `json:"seeking_description"`
}

func (r VenueRequest) applyTo(v *domain.Venue) {
	v.Name = r.Name
	v.City = r.City
	v.State = r.State
	v.Address = r.Address
	v.Phone = r.Phone
	v.Genres = r.Genres
	v.ImageLink = r.ImageLink
	v.Website = r.Website
	v.FacebookLink = r.FacebookLink
	v.SeekingTalent = r.SeekingTalent
	v.SeekingDescription = r.SeekingDescription
}
