package scheduling

import (
	"context"
	"time"

	"fyyur/internal/domain"
)

type Reason string

const (
	ReasonArtistNotFound Reason = "ArtistNotFound"
	ReasonNotAvailable   Reason = "NotAvailable"
)

type Decision struct {
	Admitted bool
	Reason   Reason
}

func Admit() Decision {
	return Decision{Admitted: true}
}

func Reject(reason Reason) Decision {
	return Decision{Reason: reason}
}

// Err returns nil for an admitted candidate and the matching sentinel otherwise.
func (d Decision) Err() error {
	switch {
	case d.Admitted:
		return nil
	case d.Reason == ReasonArtistNotFound:
		return ErrArtistNotFound
	default:
		return ErrNotAvailable
	}
}

type Validator struct {
	index AvailabilityIndex
}

func NewValidator(index AvailabilityIndex) *Validator {
	return &Validator{index: index}
}

// Validate decides whether an artist can play at start. It never writes.
// The returned error is reserved for store failures; rejections come back
// as a Decision.
func (v *Validator) Validate(ctx context.Context, artistID int64, start time.Time) (Decision, error) {
	exists, err := v.index.ArtistExists(ctx, artistID)
	if err != nil {
		return Decision{}, err
	}
	if !exists {
		return Reject(ReasonArtistNotFound), nil
	}

	windows, err := v.index.WindowsFor(ctx, artistID)
	if err != nil {
		return Decision{}, err
	}
	return Decide(windows, start), nil
}

// Decide admits start when any window covers its weekday and wall-clock time.
// No windows means no availability at all.
func Decide(windows []domain.Availability, start time.Time) Decision {
	day := domain.WeekdayOf(start)
	tod := domain.TimeOfDayOf(start)
	for _, w := range windows {
		if w.Contains(day, tod) {
			return Admit()
		}
	}
	return Reject(ReasonNotAvailable)
}
