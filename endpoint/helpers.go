package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/chat"
	"github.com/Xwdgood/Virtual-GP/middleware"
	"github.com/Xwdgood/Virtual-GP/model"
	"github.com/Xwdgood/Virtual-GP/store"
	"github.com/Xwdgood/Virtual-GP/util"
)

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getStoreOrRespond(c *gin.Context) (store.UserStore, bool) {
	users := middleware.GetUserStore(c)
	if users == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "User store not available",
			Err: fmt.Errorf("user store is nil"),
		})
		return nil, false
	}
	return users, true
}

func getSessionsOrRespond(c *gin.Context) (store.SessionStore, bool) {
	sessions := middleware.GetSessions(c)
	if sessions == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Session store not available",
			Err: fmt.Errorf("session store is nil"),
		})
		return nil, false
	}
	return sessions, true
}

func getChatOrRespond(c *gin.Context) (*chat.Service, bool) {
	consultations := middleware.GetChat(c)
	if consultations == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Consultation service not available",
			Err: fmt.Errorf("consultation service is nil"),
		})
		return nil, false
	}
	return consultations, true
}

// currentUserOrRespond resolves the session user and loads their record.
func currentUserOrRespond(c *gin.Context) (*model.UserData, store.UserStore, bool) {
	users, ok := getStoreOrRespond(c)
	if !ok {
		return nil, nil, false
	}

	email, ok := middleware.CurrentEmail(c)
	if !ok {
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "No user logged in",
			Err: fmt.Errorf("no session user"),
		})
		return nil, nil, false
	}

	user, err := users.GetUser(email)
	if err == store.ErrUserNotFound {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "User not found",
			Err: err,
		})
		return nil, nil, false
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to load user",
			Err: err,
		})
		return nil, nil, false
	}

	return user, users, true
}
