package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	identityapp "github.com/storefront/backend/internal/application/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// UserHandler handles user endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /users.
// A known email answers 200 with a nil insertedId instead of inserting.
func (h *UserHandler) Create(c *gin.Context) {
	var req identityapp.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp.InsertedID == nil {
		h.Success(c, resp)
		return
	}
	h.Created(c, resp)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// GetRole handles GET /users/role?email=
func (h *UserHandler) GetRole(c *gin.Context) {
	resp, err := h.userService.GetRole(c.Request.Context(), c.Query("email"))
	if errors.Is(err, shared.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.Response{
			Success: false,
			Data:    identityapp.RoleResponse{Message: "User not found"},
			Error:   &dto.ErrorInfo{Code: dto.ErrCodeNotFound, Message: "User not found", RequestID: getRequestID(c)},
		})
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// MakeAdmin handles PATCH /users/admin/:id
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	result, err := h.userService.MakeAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete handles DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	result, err := h.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
