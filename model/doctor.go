package model

import "time"

// Gender filter values accepted by the doctor directory.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderAll    = "all"
)

// Availability tags carried by a doctor. SlotAllDay subsumes both periods;
// SlotAll is only valid as a filter value and means "no constraint".
const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotAllDay    = "allday"
	SlotAll       = "all"
)

// Doctor represents one entry of the fixed directory catalog.
// @Description Doctor directory entry
type Doctor struct {
	ID                 string    `json:"id" example:"3"`
	Name               string    `json:"name" example:"Dr. Joanna Poe"`
	Avatar             string    `json:"avatar"`
	Specialty          string    `json:"specialty" example:"Cardiology"`
	EarliestAvailable  time.Time `json:"earliest_available"`
	Location           string    `json:"location" example:"Middlemore Hospital, 100 Hospital Rd, Papatoetoe, Auckland 2025"`
	Distance           float64   `json:"distance" example:"5"`
	Cost               float64   `json:"cost" example:"45"`
	Rating             float64   `json:"rating" example:"4.7"`
	Experience         int       `json:"experience" example:"18"`
	Description        string    `json:"description,omitempty"`
	Gender             string    `json:"gender" example:"female"`
	AvailableTimeSlots []string  `json:"available_time_slots" example:"afternoon"`
}

// PriceRange bounds doctor cost filtering, inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DoctorFilters is the transient query input of the directory search.
// Nil or zero-valued fields mean "no constraint"; nothing here is persisted.
type DoctorFilters struct {
	Gender      string      `json:"gender,omitempty"`
	PriceRange  *PriceRange `json:"price_range,omitempty"`
	MaxDistance *float64    `json:"max_distance,omitempty"`
	TimeSlot    string      `json:"time_slot,omitempty"`
}

// TimeSlot is one bookable time point derived for a doctor. Availability
// reflects the doctor's coarse availability tags only; it does not track
// actual bookings, so selecting a slot reserves nothing.
type TimeSlot struct {
	Time      string `json:"time" example:"9:00"`
	Available bool   `json:"available"`
	Period    string `json:"period" example:"morning"`
}

// DateOption pairs a bookable calendar date with its display label.
type DateOption struct {
	Date    string `json:"date" example:"2025-08-30"`
	Display string `json:"display" example:"Sat, Aug 30"`
}
