package catalog

import (
	"time"

	"github.com/Xwdgood/Virtual-GP/model"
)

// The bookable time points of a working day. Every doctor gets the same grid;
// only availability varies with the doctor's tags.
var (
	morningTimes   = []string{"9:00", "9:30", "10:00", "10:30", "11:00", "11:30"}
	afternoonTimes = []string{"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00"}
)

// Dates returns the seven bookable calendar days starting the day after now,
// each paired with its display label.
func Dates(now time.Time) []model.DateOption {
	out := make([]model.DateOption, 0, 7)
	for i := 1; i <= 7; i++ {
		day := now.AddDate(0, 0, i)
		out = append(out, model.DateOption{
			Date:    day.Format("2006-01-02"),
			Display: day.Format("Mon, Jan 2"),
		})
	}
	return out
}

// TimeSlots derives the bookable slot grid for a doctor from its availability
// tags: six morning points followed by seven afternoon points, each marked
// available when the tags contain the period or allday. The derivation is
// pure, so repeated calls with the same tags yield identical output.
//
// Known limitation, carried over deliberately: availability never reflects
// actual bookings. Selecting a slot reserves nothing, and any number of
// callers can "book" the same slot without conflict.
func TimeSlots(availableTags []string) []model.TimeSlot {
	morningOpen := containsTag(availableTags, model.SlotMorning) ||
		containsTag(availableTags, model.SlotAllDay)
	afternoonOpen := containsTag(availableTags, model.SlotAfternoon) ||
		containsTag(availableTags, model.SlotAllDay)

	slots := make([]model.TimeSlot, 0, len(morningTimes)+len(afternoonTimes))
	for _, t := range morningTimes {
		slots = append(slots, model.TimeSlot{
			Time:      t,
			Available: morningOpen,
			Period:    model.SlotMorning,
		})
	}
	for _, t := range afternoonTimes {
		slots = append(slots, model.TimeSlot{
			Time:      t,
			Available: afternoonOpen,
			Period:    model.SlotAfternoon,
		})
	}
	return slots
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
