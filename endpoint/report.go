package endpoint

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/Xwdgood/Virtual-GP/util"
)

type createReportRequest struct {
	Title       string `json:"title" example:"Blood Test"`
	Description string `json:"description,omitempty"`
	TextContent string `json:"text_content,omitempty"`
	ImageData   string `json:"image_data,omitempty"`
}

type updateReportRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	TextContent *string `json:"text_content,omitempty"`
	ImageData   *string `json:"image_data,omitempty"`
}

// reportType derives the stored type from which content is present.
func reportType(imageData, textContent string) string {
	switch {
	case imageData != "" && textContent != "":
		return model.ReportTypeMixed
	case imageData != "":
		return model.ReportTypeImage
	default:
		return model.ReportTypeText
	}
}

// ListReports godoc
// @Summary      List the session user's medical reports
// @Tags         Reports
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse "Reports, most recent first"
// @Failure      401 {object} util.APIResponse "No user logged in"
// @Router       /report [get]
func ListReports(c *gin.Context) {
	user, _, ok := currentUserOrRespond(c)
	if !ok {
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Reports retrieved",
		Data: map[string]interface{}{
			"reports": user.MedicalReports,
			"total":   len(user.MedicalReports),
		},
	})
}

// CreateReport godoc
// @Summary      Create a medical report
// @Description  Title is required; the type is derived from which content is present and fixed at creation. New reports go to the front of the timeline.
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body createReportRequest true "Report content"
// @Success      200 {object} util.APIResponse{data=model.MedicalReport} "Report created"
// @Failure      400 {object} util.APIResponse "Missing title"
// @Failure      401 {object} util.APIResponse "No user logged in"
// @Router       /report [post]
func CreateReport(c *gin.Context) {
	var req createReportRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	if req.Title == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Title is required",
			Err: fmt.Errorf("title is empty"),
		})
		return
	}

	user, users, ok := currentUserOrRespond(c)
	if !ok {
		return
	}

	report := model.MedicalReport{
		ID:          util.NewID(),
		Title:       req.Title,
		Date:        time.Now(),
		Description: req.Description,
		TextContent: req.TextContent,
		ImageURL:    req.ImageData,
		Type:        reportType(req.ImageData, req.TextContent),
	}

	user.MedicalReports = append([]model.MedicalReport{report}, user.MedicalReports...)
	if err := users.SaveUser(*user); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save report", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Report created", Data: report})
}

// UpdateReport godoc
// @Summary      Edit a medical report
// @Description  Updates the provided fields of an owned report. ID and date are kept; the type stays whatever creation decided.
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Report ID"
// @Param        request body updateReportRequest true "Fields to change"
// @Success      200 {object} util.APIResponse{data=model.MedicalReport} "Report updated"
// @Failure      401 {object} util.APIResponse "No user logged in"
// @Failure      404 {object} util.APIResponse "Report not found"
// @Router       /report/{id} [patch]
func UpdateReport(c *gin.Context) {
	var req updateReportRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	user, users, ok := currentUserOrRespond(c)
	if !ok {
		return
	}

	id := c.Param("id")
	for i := range user.MedicalReports {
		if user.MedicalReports[i].ID != id {
			continue
		}

		report := &user.MedicalReports[i]
		if req.Title != nil {
			report.Title = *req.Title
		}
		if req.Description != nil {
			report.Description = *req.Description
		}
		if req.TextContent != nil {
			report.TextContent = *req.TextContent
		}
		if req.ImageData != nil {
			report.ImageURL = *req.ImageData
		}

		if err := users.SaveUser(*user); err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save report", Err: err})
			return
		}

		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Report updated", Data: *report})
		return
	}

	util.CallErrorNotFound(c, util.APIErrorParams{
		Msg: "Report not found",
		Err: fmt.Errorf("no report with id %q", id),
	})
}

// DeleteReport godoc
// @Summary      Delete a medical report
// @Tags         Reports
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Report ID"
// @Success      200 {object} util.APIResponse "Report deleted"
// @Failure      401 {object} util.APIResponse "No user logged in"
// @Failure      404 {object} util.APIResponse "Report not found"
// @Router       /report/{id} [delete]
func DeleteReport(c *gin.Context) {
	user, users, ok := currentUserOrRespond(c)
	if !ok {
		return
	}

	id := c.Param("id")
	for i := range user.MedicalReports {
		if user.MedicalReports[i].ID != id {
			continue
		}

		user.MedicalReports = append(user.MedicalReports[:i], user.MedicalReports[i+1:]...)
		if err := users.SaveUser(*user); err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete report", Err: err})
			return
		}

		util.CallSuccessOK(c, util.APISuccessParams{Msg: "Report deleted", Data: nil})
		return
	}

	util.CallErrorNotFound(c, util.APIErrorParams{
		Msg: "Report not found",
		Err: fmt.Errorf("no report with id %q", id),
	})
}
