package catalog

import (
	"sort"
	"strings"

	"github.com/Xwdgood/Virtual-GP/model"
)

// Search returns the catalog entries matching the keyword and every active
// filter. The filters are an unordered conjunction of independent predicates,
// so the order they are applied in never changes the result set. Relative
// catalog order is preserved among matches and an empty result is a normal
// outcome, not an error.
func Search(query string, filters model.DoctorFilters) []model.Doctor {
	matched := Doctors()

	// Whitespace-only queries match everything.
	if term := strings.TrimSpace(query); term != "" {
		term = strings.ToLower(term)
		matched = keep(matched, func(d model.Doctor) bool {
			return strings.Contains(strings.ToLower(d.Name), term) ||
				strings.Contains(strings.ToLower(d.Specialty), term) ||
				strings.Contains(strings.ToLower(d.Location), term)
		})
	}

	if filters.Gender != "" && filters.Gender != model.GenderAll {
		matched = keep(matched, func(d model.Doctor) bool {
			return d.Gender == filters.Gender
		})
	}

	if pr := filters.PriceRange; pr != nil {
		matched = keep(matched, func(d model.Doctor) bool {
			return d.Cost >= pr.Min && d.Cost <= pr.Max
		})
	}

	if filters.MaxDistance != nil {
		matched = keep(matched, func(d model.Doctor) bool {
			return d.Distance <= *filters.MaxDistance
		})
	}

	// The allday tag satisfies any specific slot request.
	if filters.TimeSlot != "" && filters.TimeSlot != model.SlotAll {
		matched = keep(matched, func(d model.Doctor) bool {
			return hasSlot(d, filters.TimeSlot) || hasSlot(d, model.SlotAllDay)
		})
	}

	return matched
}

func keep(doctors []model.Doctor, pred func(model.Doctor) bool) []model.Doctor {
	out := doctors[:0]
	for _, d := range doctors {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}

func hasSlot(d model.Doctor, slot string) bool {
	for _, s := range d.AvailableTimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// SortByDistance returns the doctors ordered by distance ascending. The sort
// is stable and the input slice is left untouched.
func SortByDistance(doctors []model.Doctor) []model.Doctor {
	return sortedBy(doctors, func(a, b model.Doctor) bool {
		return a.Distance < b.Distance
	})
}

// SortByCost returns the doctors ordered by cost ascending.
func SortByCost(doctors []model.Doctor) []model.Doctor {
	return sortedBy(doctors, func(a, b model.Doctor) bool {
		return a.Cost < b.Cost
	})
}

// SortByRating returns the doctors ordered by rating descending.
func SortByRating(doctors []model.Doctor) []model.Doctor {
	return sortedBy(doctors, func(a, b model.Doctor) bool {
		return a.Rating > b.Rating
	})
}

func sortedBy(doctors []model.Doctor, less func(a, b model.Doctor) bool) []model.Doctor {
	out := make([]model.Doctor, len(doctors))
	copy(out, doctors)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// SlotLabel returns the display text for an availability tag. Unknown tags
// pass through unchanged.
func SlotLabel(slot string) string {
	switch slot {
	case model.SlotMorning:
		return "Morning"
	case model.SlotAfternoon:
		return "Afternoon"
	case model.SlotAllDay:
		return "All Day"
	default:
		return slot
	}
}
