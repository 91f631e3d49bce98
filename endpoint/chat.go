package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/chat"
	"github.com/Xwdgood/Virtual-GP/util"
)

type sendMessageRequest struct {
	Text      string `json:"text" example:"I have a headache"`
	ImageData string `json:"image_data,omitempty"`
}

// OpenConsultation godoc
// @Summary      Start a consultation session
// @Description  Opens an in-memory session seeded with the assistant greeting. Sessions do not survive a restart; chat messages are never persisted.
// @Tags         Consultation
// @Produce      json
// @Success      200 {object} util.APIResponse "New session with greeting"
// @Router       /consultation [post]
func OpenConsultation(c *gin.Context) {
	consultations, ok := getChatOrRespond(c)
	if !ok {
		return
	}

	sess := consultations.Open()
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Consultation started", Data: sess})
}

// SendConsultationMessage godoc
// @Summary      Send a message into a consultation
// @Description  The assistant walks a fixed three-step script, one step per message, regardless of content; the last step repeats. Sends under a second apart get a wait warning instead of a reply.
// @Tags         Consultation
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body sendMessageRequest true "User message"
// @Success      200 {object} util.APIResponse "Assistant response"
// @Failure      400 {object} util.APIResponse "Empty message"
// @Failure      404 {object} util.APIResponse "Unknown session"
// @Router       /consultation/{id}/message [post]
func SendConsultationMessage(c *gin.Context) {
	var req sendMessageRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	consultations, ok := getChatOrRespond(c)
	if !ok {
		return
	}

	reply, err := consultations.Send(c.Param("id"), req.Text, req.ImageData)
	switch err {
	case nil:
	case chat.ErrEmptyMessage:
		util.CallUserError(c, util.APIErrorParams{Msg: "Message text is required", Err: err})
		return
	case chat.ErrSessionNotFound:
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Consultation not found", Err: err})
		return
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to send message", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Message sent", Data: reply})
}

// EndConsultation godoc
// @Summary      End a consultation session
// @Description  Closes the session and returns the full message list, warnings included. This payload is what the summary endpoint consumes.
// @Tags         Consultation
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} util.APIResponse "Full message list"
// @Failure      404 {object} util.APIResponse "Unknown session"
// @Router       /consultation/{id}/end [post]
func EndConsultation(c *gin.Context) {
	consultations, ok := getChatOrRespond(c)
	if !ok {
		return
	}

	messages, err := consultations.End(c.Param("id"))
	if err == chat.ErrSessionNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Consultation not found", Err: err})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to end consultation", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Consultation ended",
		Data: map[string]interface{}{
			"messages": messages,
		},
	})
}
