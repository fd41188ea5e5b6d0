package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zdzdigital/booky-backend/internal/pkg/request"
	"github.com/zdzdigital/booky-backend/internal/pkg/response"
	"github.com/zdzdigital/booky-backend/internal/user"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /v1/users
// Staff only: lists accounts for the admin panel.
func (h *UserHandler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var isStaffPtr *bool
	if v := c.Query("is_staff"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			isStaffPtr = &b
		}
	}

	filter := user.Filter{
		Page:     params.Page,
		PageSize: params.PageSize,
		Email:    c.Query("email"),
		IsStaff:  isStaffPtr,
	}

	users, total, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}

	items := make([]UserResponse, len(users))
	for i, u := range users {
		items[i] = NewUserResponse(u)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}
