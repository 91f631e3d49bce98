package endpoint

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/catalog"
	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/Xwdgood/Virtual-GP/util"
)

// parseDoctorFilters reads the filter query parameters. Absent parameters
// mean no constraint; malformed numbers are reported, not silently dropped.
func parseDoctorFilters(c *gin.Context) (model.DoctorFilters, error) {
	var filters model.DoctorFilters

	filters.Gender = c.Query("gender")
	filters.TimeSlot = c.Query("time_slot")

	minStr, maxStr := c.Query("price_min"), c.Query("price_max")
	if minStr != "" || maxStr != "" {
		pr := &model.PriceRange{Min: 0, Max: 100}
		if minStr != "" {
			v, err := strconv.ParseFloat(minStr, 64)
			if err != nil {
				return filters, fmt.Errorf("invalid price_min %q", minStr)
			}
			pr.Min = v
		}
		if maxStr != "" {
			v, err := strconv.ParseFloat(maxStr, 64)
			if err != nil {
				return filters, fmt.Errorf("invalid price_max %q", maxStr)
			}
			pr.Max = v
		}
		filters.PriceRange = pr
	}

	if distStr := c.Query("max_distance"); distStr != "" {
		v, err := strconv.ParseFloat(distStr, 64)
		if err != nil {
			return filters, fmt.Errorf("invalid max_distance %q", distStr)
		}
		filters.MaxDistance = &v
	}

	return filters, nil
}

// ListDoctors godoc
// @Summary      Search the doctor directory
// @Description  Case-insensitive keyword search over name, specialty and location, combined with gender, price, distance and time-slot filters, optionally sorted.
// @Tags         Doctors
// @Produce      json
// @Param        keyword query string false "Search keyword"
// @Param        gender query string false "male | female | all"
// @Param        price_min query number false "Minimum cost, inclusive"
// @Param        price_max query number false "Maximum cost, inclusive"
// @Param        max_distance query number false "Maximum distance in km, inclusive"
// @Param        time_slot query string false "morning | afternoon | allday | all"
// @Param        sort_by query string false "distance | cost | rating"
// @Success      200 {object} util.APIResponse "Matching doctors"
// @Failure      400 {object} util.APIResponse "Malformed filter value"
// @Router       /doctor [get]
func ListDoctors(c *gin.Context) {
	filters, err := parseDoctorFilters(c)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid filter parameters", Err: err})
		return
	}

	doctors := catalog.Search(c.Query("keyword"), filters)

	switch sortBy := c.Query("sort_by"); sortBy {
	case "":
		// Catalog order.
	case "distance":
		doctors = catalog.SortByDistance(doctors)
	case "cost":
		doctors = catalog.SortByCost(doctors)
	case "rating":
		doctors = catalog.SortByRating(doctors)
	default:
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid sort_by value",
			Err: fmt.Errorf("unknown sort %q", sortBy),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Doctors retrieved",
		Data: map[string]interface{}{
			"doctors": doctors,
			"total":   len(doctors),
		},
	})
}

// GetDoctor godoc
// @Summary      Get one doctor by ID
// @Tags         Doctors
// @Produce      json
// @Param        id path string true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=model.Doctor} "Doctor found"
// @Failure      404 {object} util.APIResponse "Unknown doctor ID"
// @Router       /doctor/{id} [get]
func GetDoctor(c *gin.Context) {
	doctor, ok := catalog.FindDoctor(c.Param("id"))
	if !ok {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Doctor not found",
			Err: fmt.Errorf("no doctor with id %q", c.Param("id")),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Doctor retrieved", Data: doctor})
}

// DoctorSlots godoc
// @Summary      Bookable dates and time slots for a doctor
// @Description  Seven days starting tomorrow and the fixed slot grid, marked available per the doctor's availability tags. Availability never reflects existing bookings.
// @Tags         Doctors
// @Produce      json
// @Param        id path string true "Doctor ID"
// @Success      200 {object} util.APIResponse "Dates and slots"
// @Failure      404 {object} util.APIResponse "Unknown doctor ID"
// @Router       /doctor/{id}/slots [get]
func DoctorSlots(c *gin.Context) {
	doctor, ok := catalog.FindDoctor(c.Param("id"))
	if !ok {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Doctor not found",
			Err: fmt.Errorf("no doctor with id %q", c.Param("id")),
		})
		return
	}

	labels := make([]string, 0, len(doctor.AvailableTimeSlots))
	for _, tag := range doctor.AvailableTimeSlots {
		labels = append(labels, catalog.SlotLabel(tag))
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Slots retrieved",
		Data: map[string]interface{}{
			"dates":               catalog.Dates(time.Now()),
			"time_slots":          catalog.TimeSlots(doctor.AvailableTimeSlots),
			"availability_labels": labels,
		},
	})
}

type bookRequest struct {
	Date string `json:"date" example:"2025-08-30"`
	Time string `json:"time" example:"9:30"`
}

// BookAppointment godoc
// @Summary      Book an appointment slot
// @Description  Confirms a (date, time) selection against the doctor's slot grid. Nothing is stored and nothing is reserved: the same slot can be booked any number of times. The confirmation is cosmetic.
// @Tags         Doctors
// @Accept       json
// @Produce      json
// @Param        id path string true "Doctor ID"
// @Param        request body bookRequest true "Selected slot"
// @Success      200 {object} util.APIResponse "Appointment confirmed"
// @Failure      400 {object} util.APIResponse "Slot not bookable for this doctor"
// @Failure      404 {object} util.APIResponse "Unknown doctor ID"
// @Router       /doctor/{id}/book [post]
func BookAppointment(c *gin.Context) {
	doctor, ok := catalog.FindDoctor(c.Param("id"))
	if !ok {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Doctor not found",
			Err: fmt.Errorf("no doctor with id %q", c.Param("id")),
		})
		return
	}

	var req bookRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	if !dateBookable(req.Date) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Date is not bookable",
			Err: fmt.Errorf("date %q is outside the booking window", req.Date),
		})
		return
	}

	if !slotBookable(doctor, req.Time) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Time slot is not available for this doctor",
			Err: fmt.Errorf("slot %q is not available", req.Time),
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Appointment confirmed",
		Data: map[string]interface{}{
			"doctor_id":   doctor.ID,
			"doctor_name": doctor.Name,
			"date":        req.Date,
			"time":        req.Time,
		},
	})
}

func dateBookable(date string) bool {
	for _, opt := range catalog.Dates(time.Now()) {
		if opt.Date == date {
			return true
		}
	}
	return false
}

func slotBookable(doctor model.Doctor, at string) bool {
	for _, slot := range catalog.TimeSlots(doctor.AvailableTimeSlots) {
		if slot.Time == at {
			return slot.Available
		}
	}
	return false
}
