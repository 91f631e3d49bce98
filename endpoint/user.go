package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/util"
)

type updateUserRequest struct {
	Name   *string `json:"name,omitempty" example:"Demo User"`
	Avatar *string `json:"avatar,omitempty"`
}

// GetUser godoc
// @Summary      Current user's profile
// @Description  Returns the session user's profile with medical reports embedded.
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse{data=model.UserData} "User profile"
// @Failure      401 {object} util.APIResponse "No user logged in"
// @Router       /user [get]
func GetUser(c *gin.Context) {
	user, _, ok := currentUserOrRespond(c)
	if !ok {
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User retrieved", Data: user})
}

// UpdateUser godoc
// @Summary      Update the current user's profile
// @Description  Updates name and/or avatar. Email is the record key and cannot change.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body updateUserRequest true "Fields to change"
// @Success      200 {object} util.APIResponse{data=model.UserData} "Updated profile"
// @Failure      400 {object} util.APIResponse "No fields provided"
// @Failure      401 {object} util.APIResponse "No user logged in"
// @Router       /user [patch]
func UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	if req.Name == nil && req.Avatar == nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "At least one field (name or avatar) must be provided",
			Err: fmt.Errorf("no fields to update"),
		})
		return
	}

	user, users, ok := currentUserOrRespond(c)
	if !ok {
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := users.SaveUser(*user); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update user", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "User updated", Data: user})
}

// ListAllUsers godoc
// @Summary      List every account
// @Description  Returns all user records. There is no role system; this mirrors the original admin listing and is as unguarded as the rest of the login stub.
// @Tags         Users
// @Produce      json
// @Success      200 {object} util.APIResponse "All users"
// @Router       /user/all [get]
func ListAllUsers(c *gin.Context) {
	users, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	all, err := users.AllUsers()
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to list users", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Users retrieved",
		Data: map[string]interface{}{
			"users": all,
			"total": len(all),
		},
	})
}
