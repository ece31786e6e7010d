package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"usermgmt-api/internal/app"
	"usermgmt-api/internal/model"
	"usermgmt-api/internal/transport/http/middleware"
	"usermgmt-api/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

// UserRequest is the body of create and update. Both keys must be present and
// non-null; empty strings pass. A missing key is reported as a 500 together
// with storage failures.
type UserRequest struct {
	Username *string `json:"username" binding:"required"`
	Email    *string `json:"email" binding:"required"`
}

func (r UserRequest) input() app.UserInput {
	return app.UserInput{
		Username: *r.Username,
		Email:    *r.Email,
	}
}

type UserEnvelope struct {
	User model.User `json:"user"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logFailure(c, err, "error creating user", 0)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorCreatingUser)
		return
	}

	if _, err := h.userService.CreateUser(c.Request.Context(), req.input()); err != nil {
		logFailure(c, err, "error creating user", 0)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorCreatingUser)
		return
	}

	response.Message(c, http.StatusCreated, response.MsgUserCreated)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		logFailure(c, err, "error getting users", 0)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorGettingUsers)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	response.JSON(c, http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, response.MsgUserNotFound)
			return
		}
		logFailure(c, err, "error getting user", id)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorGettingUser)
		return
	}

	response.JSON(c, http.StatusOK, UserEnvelope{User: *user})
}

// Update checks existence before reading the body, so an unknown id is a 404
// even when the body is unusable.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.userService.GetUser(ctx, id); err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, response.MsgUserNotFound)
			return
		}
		logFailure(c, err, "error updating user", id)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorUpdatingUser)
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logFailure(c, err, "error updating user", id)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorUpdatingUser)
		return
	}

	if _, err := h.userService.UpdateUser(ctx, id, req.input()); err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, response.MsgUserNotFound)
			return
		}
		logFailure(c, err, "error updating user", id)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorUpdatingUser)
		return
	}

	response.Message(c, http.StatusOK, response.MsgUserUpdated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		response.Message(c, http.StatusNotFound, response.MsgUserNotFound)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, app.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, response.MsgUserNotFound)
			return
		}
		logFailure(c, err, "error deleting user", id)
		response.Message(c, http.StatusInternalServerError, response.MsgErrorDeletingUser)
		return
	}

	response.Message(c, http.StatusOK, response.MsgUserDeleted)
}

// parseUserID accepts positive integers only.
func parseUserID(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id64 == 0 {
		return 0, false
	}
	return uint(id64), true
}

func logFailure(c *gin.Context, err error, msg string, id uint) {
	event := log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(c)).
		Bool("constraint_violation", errors.Is(err, app.ErrUserConflict))
	if id != 0 {
		event = event.Uint("user_id", id)
	}
	event.Msg(msg)
}
