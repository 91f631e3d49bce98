package store

import (
	"time"

	"github.com/Xwdgood/Virtual-GP/model"
)

// seedUsers returns the two well-known accounts installed on first use when
// the database holds no users at all.
func seedUsers(now time.Time) []model.UserData {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return []model.UserData{
		{
			Email: "demo@example.com",
			Name:  "Demo User",
			MedicalReports: []model.MedicalReport{
				{
					ID:          "1",
					Title:       "Annual Health Checkup",
					Date:        day(2024, time.January, 15),
					Description: "Regular annual health examination",
					TextContent: "Blood pressure: 120/80, Heart rate: 72 bpm, Weight: 70kg, Height: 175cm. All vital signs are normal. Recommended to continue current lifestyle with regular exercise.",
					Type:        model.ReportTypeText,
				},
				{
					ID:          "2",
					Title:       "X-Ray Results",
					Date:        day(2024, time.February, 20),
					Description: "Chest X-ray examination",
					TextContent: "No abnormalities detected in chest X-ray. Lung fields are clear, heart size is normal.",
					Type:        model.ReportTypeMixed,
				},
				{
					ID:          "3",
					Title:       "Lab Test Results",
					Date:        day(2024, time.March, 10),
					Description: "Blood work and urine analysis",
					TextContent: "Complete Blood Count (CBC): All values within normal range. Blood glucose: 95 mg/dL (normal). Cholesterol: 180 mg/dL (optimal). Kidney function tests: Normal.",
					Type:        model.ReportTypeText,
				},
			},
			CreatedAt:   day(2024, time.January, 1),
			LastLoginAt: now,
		},
		{
			Email: "john@example.com",
			Name:  "John Smith",
			MedicalReports: []model.MedicalReport{
				{
					ID:          "4",
					Title:       "Vaccination Record",
					Date:        day(2024, time.January, 5),
					Description: "COVID-19 booster shot",
					TextContent: "Received Pfizer-BioNTech COVID-19 booster vaccination. No adverse reactions observed. Next booster recommended in 6 months.",
					Type:        model.ReportTypeText,
				},
			},
			CreatedAt:   day(2024, time.January, 5),
			LastLoginAt: now,
		},
	}
}
