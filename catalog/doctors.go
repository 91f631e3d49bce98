// Package catalog holds the fixed doctor directory and the pure query logic
// over it: text search, multi-criteria filtering, sorting and the derived
// booking time-slot model. Nothing in this package has side effects.
package catalog

import (
	"time"

	"github.com/Xwdgood/Virtual-GP/model"
)

// Auckland hospital addresses used by the seeded catalog.
var aucklandHospitals = []string{
	"Auckland City Hospital, 2 Park Rd, Grafton, Auckland 1023",
	"North Shore Hospital, 124 Shakespeare Rd, Takapuna, Auckland 0622",
	"Middlemore Hospital, 100 Hospital Rd, Papatoetoe, Auckland 2025",
	"Waitakere Hospital, 55 Lincoln Rd, Henderson, Auckland 0610",
	"Starship Children's Hospital, 2 Park Rd, Grafton, Auckland 1023",
	"Greenlane Clinical Centre, 214 Green Lane West, Epsom, Auckland 1051",
	"Auckland Eye, 140 Remuera Rd, Remuera, Auckland 1050",
	"Mercy Hospital, 98 Mountain Rd, Epsom, Auckland 1023",
	"Ascot Hospital, 90 Greenlane East, Remuera, Auckland 1051",
	"Southern Cross Hospital, 90 Greenlane East, Remuera, Auckland 1051",
}

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// doctors is the full catalog. It is seeded once and never mutated; callers
// only ever see copies.
var doctors = []model.Doctor{
	{
		ID:                 "1",
		Name:               "Dr. Jane Loe",
		Avatar:             "https://images.unsplash.com/photo-1551884170-09fb70a3a2ed?w=400&h=400&fit=crop&crop=face",
		Specialty:          "General Practice",
		EarliestAvailable:  at(2025, time.August, 16, 18, 0),
		Location:           aucklandHospitals[0],
		Distance:           2,
		Cost:               20,
		Rating:             4.8,
		Experience:         12,
		Description:        "Experienced general practitioner with focus on preventive care and family medicine.",
		Gender:             model.GenderFemale,
		AvailableTimeSlots: []string{model.SlotMorning, model.SlotAfternoon},
	},
	{
		ID:                 "2",
		Name:               "Dr. John Doe",
		Avatar:             "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Internal Medicine",
		EarliestAvailable:  at(2025, time.August, 18, 12, 0),
		Location:           aucklandHospitals[1],
		Distance:           0,
		Cost:               0,
		Rating:             4.9,
		Experience:         15,
		Description:        "Specialist in internal medicine with expertise in chronic disease management.",
		Gender:             model.GenderMale,
		AvailableTimeSlots: []string{model.SlotAllDay},
	},
	{
		ID:                 "3",
		Name:               "Dr. Joanna Poe",
		Avatar:             "https://images.unsplash.com/photo-1607990281513-2c110a25bd8c?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Cardiology",
		EarliestAvailable:  at(2025, time.August, 20, 14, 30),
		Location:           aucklandHospitals[2],
		Distance:           5,
		Cost:               45,
		Rating:             4.7,
		Experience:         18,
		Description:        "Cardiologist specializing in heart disease prevention and treatment.",
		Gender:             model.GenderFemale,
		AvailableTimeSlots: []string{model.SlotAfternoon},
	},
	{
		ID:                 "4",
		Name:               "Dr. Michael Chen",
		Avatar:             "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Dermatology",
		EarliestAvailable:  at(2025, time.August, 17, 10, 0),
		Location:           aucklandHospitals[3],
		Distance:           3,
		Cost:               35,
		Rating:             4.6,
		Experience:         10,
		Description:        "Dermatologist with expertise in skin conditions and cosmetic procedures.",
		Gender:             model.GenderMale,
		AvailableTimeSlots: []string{model.SlotMorning, model.SlotAfternoon},
	},
	{
		ID:                 "5",
		Name:               "Dr. Sarah Wilson",
		Avatar:             "https://images.unsplash.com/photo-1638202993928-7267aad84c31?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Pediatrics",
		EarliestAvailable:  at(2025, time.August, 19, 9, 30),
		Location:           aucklandHospitals[4],
		Distance:           4,
		Cost:               25,
		Rating:             4.9,
		Experience:         14,
		Description:        "Pediatrician dedicated to providing comprehensive care for children and adolescents.",
		Gender:             model.GenderFemale,
		AvailableTimeSlots: []string{model.SlotMorning},
	},
	{
		ID:                 "6",
		Name:               "Dr. Robert Taylor",
		Avatar:             "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Orthopedics",
		EarliestAvailable:  at(2025, time.August, 21, 16, 0),
		Location:           aucklandHospitals[5],
		Distance:           6,
		Cost:               50,
		Rating:             4.8,
		Experience:         20,
		Description:        "Orthopedic surgeon specializing in joint replacement and sports medicine.",
		Gender:             model.GenderMale,
		AvailableTimeSlots: []string{model.SlotAfternoon},
	},
	{
		ID:                 "7",
		Name:               "Dr. Emily Brown",
		Avatar:             "https://images.unsplash.com/photo-1633332755192-727a05c4013d?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Psychiatry",
		EarliestAvailable:  at(2025, time.August, 22, 11, 0),
		Location:           aucklandHospitals[6],
		Distance:           7,
		Cost:               40,
		Rating:             4.7,
		Experience:         16,
		Description:        "Psychiatrist focusing on mental health disorders and therapeutic interventions.",
		Gender:             model.GenderFemale,
		AvailableTimeSlots: []string{model.SlotAllDay},
	},
	{
		ID:                 "8",
		Name:               "Dr. David Kim",
		Avatar:             "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Neurology",
		EarliestAvailable:  at(2025, time.August, 23, 15, 30),
		Location:           aucklandHospitals[7],
		Distance:           8,
		Cost:               55,
		Rating:             4.9,
		Experience:         22,
		Description:        "Neurologist with specialization in brain and nervous system disorders.",
		Gender:             model.GenderMale,
		AvailableTimeSlots: []string{model.SlotMorning, model.SlotAfternoon},
	},
	{
		ID:                 "9",
		Name:               "Dr. Lisa Anderson",
		Avatar:             "https://images.unsplash.com/photo-1622253692010-333f2da6031d?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Emergency Medicine",
		EarliestAvailable:  at(2025, time.August, 16, 20, 0),
		Location:           aucklandHospitals[8],
		Distance:           1,
		Cost:               30,
		Rating:             4.8,
		Experience:         11,
		Description:        "Emergency medicine physician with extensive experience in acute care.",
		Gender:             model.GenderFemale,
		AvailableTimeSlots: []string{model.SlotAllDay},
	},
	{
		ID:                 "10",
		Name:               "Dr. James Miller",
		Avatar:             "https://images.unsplash.com/photo-1622902046580-2b47f47f5471?w=400&h=400&fit=crop&crop=face",
		Specialty:          "Family Medicine",
		EarliestAvailable:  at(2025, time.August, 24, 13, 0),
		Location:           aucklandHospitals[9],
		Distance:           9,
		Cost:               28,
		Rating:             4.6,
		Experience:         13,
		Description:        "Family medicine physician providing comprehensive care for all ages.",
		Gender:             model.GenderMale,
		AvailableTimeSlots: []string{model.SlotMorning},
	},
}

// Doctors returns a copy of the full catalog in its seeded order.
func Doctors() []model.Doctor {
	out := make([]model.Doctor, len(doctors))
	copy(out, doctors)
	return out
}

// FindDoctor looks a doctor up by ID. The second return value reports whether
// the ID exists in the catalog.
func FindDoctor(id string) (model.Doctor, bool) {
	for _, d := range doctors {
		if d.ID == id {
			return d, true
		}
	}
	return model.Doctor{}, false
}
