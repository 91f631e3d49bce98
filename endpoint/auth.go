package endpoint

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/Xwdgood/Virtual-GP/store"
	"github.com/Xwdgood/Virtual-GP/util"
)

type loginRequest struct {
	Email    string `json:"email" example:"demo@example.com"`
	Password string `json:"password" example:"anything"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  *model.UserData `json:"user"`
}

// Login godoc
// @Summary      Log a user in by email
// @Description  Accepts any syntactically valid email; the password is ignored entirely. Unknown emails get a fresh account. This is a stub, not an authentication mechanism.
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login details"
// @Success      200 {object} util.APIResponse{data=loginResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid email format"
// @Router       /login [post]
func Login(c *gin.Context) {
	var req loginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	if !util.ValidEmail(req.Email) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid email format",
			Err: fmt.Errorf("email %q does not match the expected pattern", req.Email),
		})
		return
	}

	users, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	sessions, ok := getSessionsOrRespond(c)
	if !ok {
		return
	}

	now := time.Now()
	user, err := users.GetUser(req.Email)
	switch {
	case err == store.ErrUserNotFound:
		// First login creates the account on the spot.
		user = &model.UserData{
			Email:          req.Email,
			MedicalReports: []model.MedicalReport{},
			CreatedAt:      now,
			LastLoginAt:    now,
		}
	case err != nil:
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load user", Err: err})
		return
	default:
		user.LastLoginAt = now
	}

	if err := users.SaveUser(*user); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save user", Err: err})
		return
	}

	if err := sessions.SetCurrent(user.Email); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to start session", Err: err})
		return
	}

	token, err := util.IssueSessionToken(user.Email)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to issue session token", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Login successful",
		Data: loginResponse{Token: token, User: user},
	})
}

// Logout godoc
// @Summary      Log the current user out
// @Description  Clears the current-user pointer only; all stored data is retained.
// @Tags         Authentication
// @Produce      json
// @Success      200 {object} util.APIResponse "Logout successful"
// @Router       /logout [post]
func Logout(c *gin.Context) {
	sessions, ok := getSessionsOrRespond(c)
	if !ok {
		return
	}

	if err := sessions.Clear(); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to clear session", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logout successful", Data: nil})
}
