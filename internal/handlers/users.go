package handlers

import (
	"ncd-clinic-server/internal/middleware"
	"ncd-clinic-server/internal/models"
	"ncd-clinic-server/internal/service"
	"ncd-clinic-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler handles staff-account management requests (admin only).
type UserHandler struct {
	Users *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// CreateUser handles creating a new staff account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.CreateUserInput
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Users.Create(caller, req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Created(c, "User created successfully", user.Sanitize())
}

// GetUsers handles fetching all staff accounts.
func (h *UserHandler) GetUsers(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	users, err := h.Users.List(caller)
	if err != nil {
		respondError(c, err)
		return
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i, u := range users {
		sanitized[i] = u.Sanitize()
	}

	utils.Success(c, "Users fetched successfully", sanitized)
}

// GetUserByID handles fetching a single staff account.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.Users.Get(caller, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "User fetched successfully", user.Sanitize())
}

// UpdateUser handles updating a staff account.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req service.UpdateUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.Users.Update(caller, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "User updated successfully", user.Sanitize())
}

// DeleteUser handles deleting a staff account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, exists := middleware.GetCallerFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.Users.Delete(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, "User deleted successfully", nil)
}
