package v1

import (
	"net/http"

	"github.com/fredriick/Electrify-sub009/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// UserHandler defines the interface for handling profile operations
type UserHandler interface {
	Me(ctx *gin.Context)
	List(ctx *gin.Context)
	UpdateRole(ctx *gin.Context)
}

type userHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService users.UserService) UserHandler {
	return &userHandler{userService: userService}
}

// Me handles GET /me
func (handler *userHandler) Me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, newProfileResponse(principal(ctx)))
}

// List handles GET /admin/users?role=supplier
func (handler *userHandler) List(ctx *gin.Context) {
	query := &users.ProfileQuery{Role: users.Role(ctx.Query("role"))}
	if err := bindPaging(ctx, &query.Limit, &query.Offset); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}
	if err := query.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	list, err := handler.userService.List(ctx, query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ProfileResponse, 0, len(list))
	for _, p := range list {
		response = append(response, newProfileResponse(p))
	}
	ctx.JSON(http.StatusOK, response)
}

// UpdateRole handles PATCH /super-admin/users/:id/role
func (handler *userHandler) UpdateRole(ctx *gin.Context) {
	var request UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid role data: %v", err)
		return
	}
	if err := request.Validate(); err != nil {
		respondBadRequest(ctx, "%v", err)
		return
	}

	profile, err := handler.userService.UpdateRole(ctx, ctx.Param("id"), users.Role(request.Role))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}
