package endpoint

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/chat"
	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/Xwdgood/Virtual-GP/util"
)

type summaryRequest struct {
	Messages []model.ChatMessage `json:"messages"`
}

type saveSummaryRequest struct {
	Symptoms        []string `json:"symptoms"`
	Recommendations []string `json:"recommendations"`
	RecentHistory   []string `json:"recent_history"`
}

// GenerateSummary godoc
// @Summary      Summarize a consultation
// @Description  Produces the consultation summary from a message list. The output is a fixed template when any real message exists and an all-empty summary otherwise; no analysis happens.
// @Tags         Consultation
// @Accept       json
// @Produce      json
// @Param        request body summaryRequest true "Consultation messages"
// @Success      200 {object} util.APIResponse{data=model.ChatSummary} "Summary"
// @Router       /summary [post]
func GenerateSummary(c *gin.Context) {
	var req summaryRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	summary := chat.Summarize(req.Messages, time.Now())
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Summary generated", Data: summary})
}

// SaveSummary godoc
// @Summary      Save a consultation summary as a medical report
// @Description  Renders the summary, edited or not, into a "Chat Record" report at the front of the session user's timeline.
// @Tags         Consultation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body saveSummaryRequest true "Summary content"
// @Success      200 {object} util.APIResponse{data=model.MedicalReport} "Saved report"
// @Failure      401 {object} util.APIResponse "No user logged in"
// @Router       /summary/save [post]
func SaveSummary(c *gin.Context) {
	var req saveSummaryRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	user, users, ok := currentUserOrRespond(c)
	if !ok {
		return
	}

	report := chat.SummaryReport(model.ChatSummary{
		Symptoms:        req.Symptoms,
		Recommendations: req.Recommendations,
		RecentHistory:   req.RecentHistory,
	}, time.Now())

	user.MedicalReports = append([]model.MedicalReport{report}, user.MedicalReports...)
	if err := users.SaveUser(*user); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save summary", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Chat record saved to medical records", Data: report})
}
