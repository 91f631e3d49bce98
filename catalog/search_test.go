package catalog

import (
	"testing"

	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/stretchr/testify/assert"
)

func doctorIDs(doctors []model.Doctor) []string {
	ids := make([]string, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}
	return ids
}

func floatPtr(v float64) *float64 { return &v }

func TestSearchEmptyQueryReturnsFullCatalog(t *testing.T) {
	got := Search("", model.DoctorFilters{})

	assert.Len(t, got, 10)
	assert.Equal(t, doctorIDs(Doctors()), doctorIDs(got))
}

func TestSearchWhitespaceQueryMatchesEverything(t *testing.T) {
	got := Search("   \t ", model.DoctorFilters{})
	assert.Len(t, got, 10)
}

func TestSearchKeywordIsCaseInsensitive(t *testing.T) {
	got := Search("cardio", model.DoctorFilters{})

	if assert.Len(t, got, 1) {
		assert.Equal(t, "3", got[0].ID)
		assert.Equal(t, "Cardiology", got[0].Specialty)
	}

	// Same result regardless of case.
	assert.Equal(t, doctorIDs(got), doctorIDs(Search("CARDIO", model.DoctorFilters{})))
}

func TestSearchMatchesLocation(t *testing.T) {
	got := Search("takapuna", model.DoctorFilters{})

	if assert.Len(t, got, 1) {
		assert.Equal(t, "2", got[0].ID)
	}
}

func TestSearchMaxDistance(t *testing.T) {
	got := Search("", model.DoctorFilters{MaxDistance: floatPtr(2)})

	assert.Equal(t, []string{"1", "2", "9"}, doctorIDs(got))
}

func TestSearchGenderFilter(t *testing.T) {
	got := Search("", model.DoctorFilters{Gender: model.GenderMale})
	for _, d := range got {
		assert.Equal(t, model.GenderMale, d.Gender)
	}
	assert.Len(t, got, 5)

	// "all" means no constraint.
	assert.Len(t, Search("", model.DoctorFilters{Gender: model.GenderAll}), 10)
}

func TestSearchPriceRangeIsInclusive(t *testing.T) {
	got := Search("", model.DoctorFilters{
		PriceRange: &model.PriceRange{Min: 20, Max: 30},
	})

	assert.Equal(t, []string{"1", "5", "9", "10"}, doctorIDs(got))
}

func TestSearchAllDaySatisfiesEverySlotFilter(t *testing.T) {
	// Doctor 2 is tagged allday and must show up whatever slot is asked for.
	for _, slot := range []string{model.SlotMorning, model.SlotAfternoon, model.SlotAll} {
		got := Search("", model.DoctorFilters{TimeSlot: slot})
		assert.Contains(t, doctorIDs(got), "2", "slot filter %q", slot)
	}
}

func TestSearchSlotFilter(t *testing.T) {
	got := Search("", model.DoctorFilters{TimeSlot: model.SlotMorning})

	// Morning-tagged doctors plus the allday ones.
	assert.Equal(t, []string{"1", "2", "4", "5", "7", "8", "9", "10"}, doctorIDs(got))
}

func TestSearchConjunctionLaw(t *testing.T) {
	filters := []model.DoctorFilters{
		{},
		{Gender: model.GenderFemale},
		{PriceRange: &model.PriceRange{Min: 0, Max: 40}},
		{MaxDistance: floatPtr(5)},
		{TimeSlot: model.SlotAfternoon},
		{
			Gender:      model.GenderFemale,
			PriceRange:  &model.PriceRange{Min: 10, Max: 50},
			MaxDistance: floatPtr(7),
			TimeSlot:    model.SlotAfternoon,
		},
		{
			Gender:      model.GenderMale,
			PriceRange:  &model.PriceRange{Min: 0, Max: 100},
			MaxDistance: floatPtr(10),
			TimeSlot:    model.SlotMorning,
		},
	}

	catalogIDs := doctorIDs(Doctors())

	for _, f := range filters {
		got := Search("", f)

		// Subset of the catalog.
		for _, d := range got {
			assert.Contains(t, catalogIDs, d.ID)
		}

		// Every returned doctor satisfies every active predicate.
		for _, d := range got {
			if f.Gender != "" && f.Gender != model.GenderAll {
				assert.Equal(t, f.Gender, d.Gender)
			}
			if f.PriceRange != nil {
				assert.GreaterOrEqual(t, d.Cost, f.PriceRange.Min)
				assert.LessOrEqual(t, d.Cost, f.PriceRange.Max)
			}
			if f.MaxDistance != nil {
				assert.LessOrEqual(t, d.Distance, *f.MaxDistance)
			}
			if f.TimeSlot != "" && f.TimeSlot != model.SlotAll {
				assert.True(t, hasSlot(d, f.TimeSlot) || hasSlot(d, model.SlotAllDay))
			}
		}
	}
}

func TestSearchEmptyResultIsValid(t *testing.T) {
	got := Search("no such doctor anywhere", model.DoctorFilters{})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortByCostIsNonDecreasing(t *testing.T) {
	got := SortByCost(Doctors())

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Cost, got[i].Cost)
	}
}

func TestSortByRatingIsNonIncreasing(t *testing.T) {
	got := SortByRating(Doctors())

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestSortByDistanceIsStable(t *testing.T) {
	once := SortByDistance(Doctors())
	twice := SortByDistance(once)

	assert.Equal(t, doctorIDs(once), doctorIDs(twice))
}

func TestSortByRatingKeepsCatalogOrderOnTies(t *testing.T) {
	got := SortByRating(Doctors())

	// Doctors 2, 5 and 8 all share rating 4.9 and must stay in catalog order.
	assert.Equal(t, []string{"2", "5", "8"}, doctorIDs(got)[:3])
}

func TestSortDoesNotMutateInput(t *testing.T) {
	in := Search("", model.DoctorFilters{})
	before := doctorIDs(in)

	SortByCost(in)
	SortByRating(in)
	SortByDistance(in)

	assert.Equal(t, before, doctorIDs(in))
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "Morning", SlotLabel(model.SlotMorning))
	assert.Equal(t, "Afternoon", SlotLabel(model.SlotAfternoon))
	assert.Equal(t, "All Day", SlotLabel(model.SlotAllDay))
	assert.Equal(t, "whenever", SlotLabel("whenever"))
}

func TestFindDoctor(t *testing.T) {
	d, ok := FindDoctor("3")
	assert.True(t, ok)
	assert.Equal(t, "Dr. Joanna Poe", d.Name)

	_, ok = FindDoctor("999")
	assert.False(t, ok)
}
