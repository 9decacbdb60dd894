package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calorie-counter-api/internal/dto"
	"calorie-counter-api/internal/service"
)

// UserHandler serves the user routes on top of the user service
type UserHandler struct {
	userService service.UserServicer
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers lists every user, or the users of one gender when the gender query is present
func (handler *UserHandler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	if gender, ok := c.GetQuery(GenderQueryParameter); ok {
		users, err := handler.userService.FindUsersByGender(ctx, gender)
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ConvertUsersToUserDTOs(users))
		return
	}

	users, err := handler.userService.FindAllUsers(ctx)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ConvertUsersToUserDTOs(users))
}

// CreateUser stores the user in the body
func (handler *UserHandler) CreateUser(c *gin.Context) {
	var request dto.UserDTO
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInvalidRequest, "message": err.Error()})
		return
	}

	user := dto.ConvertUserDTOToUser(&request)
	if err := handler.userService.SaveUser(c.Request.Context(), user); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ConvertUserToUserDTO(user))
}

// GetUser returns the first user with the email in the path
func (handler *UserHandler) GetUser(c *gin.Context) {
	user, err := handler.userService.FindUserByEmail(c.Request.Context(), c.Param(EmailPathParameter))
	if err != nil {
		internalError(c, err)
		return
	}
	if user == nil {
		userNotFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.ConvertUserToUserDTO(user))
}

// UpdateUser replaces the user with the email in the path. The email in the body is ignored.
func (handler *UserHandler) UpdateUser(c *gin.Context) {
	var request dto.UserDTO
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errorCodeInvalidRequest, "message": err.Error()})
		return
	}

	user := dto.ConvertUserDTOToUser(&request)
	user.Email = c.Param(EmailPathParameter)
	updatedUser, err := handler.userService.UpdateUser(c.Request.Context(), user)
	if err != nil {
		internalError(c, err)
		return
	}
	if updatedUser == nil {
		userNotFound(c)
		return
	}
	c.JSON(http.StatusOK, dto.ConvertUserToUserDTO(updatedUser))
}

// DeleteUser removes the user with the email in the path
func (handler *UserHandler) DeleteUser(c *gin.Context) {
	if err := handler.userService.DeleteUser(c.Request.Context(), c.Param(EmailPathParameter)); err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Health reports the server is up
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func userNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": errorCodeNotFound, "message": "User not found"})
}

func internalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": errorCodeInternal, "message": err.Error()})
}
