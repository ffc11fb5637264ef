package domain

import "time"

// Weekday counts from Monday=0 to Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayOf reads the weekday from t's own wall clock, without converting zones.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return "Weekday(?)"
	}
	return weekdayNames[d]
}

// Availability is a recurring weekly window. Windows never cross midnight.
type Availability struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ArtistID  int64     `json:"artist_id" gorm:"not null;index:idx_availability_artist_day"`
	DayOfWeek Weekday   `json:"day_of_week" gorm:"not null;index:idx_availability_artist_day"`
	StartTime TimeOfDay `json:"start_time" gorm:"type:varchar(8);not null"`
	EndTime   TimeOfDay `json:"end_time" gorm:"type:varchar(8);not null"`
}

func (Availability) TableName() string {
	return "artist_availabilities"
}

// Contains reports whether the window covers the given weekday and time of day.
// Both bounds are inclusive.
func (a Availability) Contains(day Weekday, tod TimeOfDay) bool {
	return a.DayOfWeek == day && a.StartTime <= tod && tod <= a.EndTime
}
