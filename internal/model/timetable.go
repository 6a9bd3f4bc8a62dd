package model

import "time"

// SlotID uniquely identifies a timetable slot
type SlotID string

// Weekday names accepted for timetable slots
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// IsWeekday reports whether day is a valid weekday name
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// TimetableSlot is a recurring weekly class entry owned by one user
type TimetableSlot struct {
	ID      SlotID
	OwnerID ProfileID
	Day     string
	Time    string
	Subject string
	Room    string
	Color   string

	CreatedAt time.Time
}
