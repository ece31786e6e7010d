package response

import "github.com/gin-gonic/gin"

const (
	MsgUserCreated       = "user created"
	MsgUserUpdated       = "user updated"
	MsgUserDeleted       = "user deleted"
	MsgUserNotFound      = "user not found"
	MsgErrorCreatingUser = "error creating user"
	MsgErrorGettingUsers = "error getting users"
	MsgErrorGettingUser  = "error getting user"
	MsgErrorUpdatingUser = "error updating user"
	MsgErrorDeletingUser = "error deleting user"
	MsgMethodNotAllowed  = "method not allowed"
)

type MessageResponse struct {
	Message string `json:"message"`
}

func JSON(c *gin.Context, httpStatus int, body any) {
	c.JSON(httpStatus, body)
}

func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, MessageResponse{Message: message})
}
