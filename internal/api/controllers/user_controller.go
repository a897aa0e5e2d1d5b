package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ascendops/internal/models/request_models"
	"ascendops/internal/services"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers godoc
// @Summary List staff accounts
// @Description Fetch all staff accounts, founders only. Inactive accounts are included with include_inactive=true
// @Tags Users
// @Accept json
// @Produce json
// @Param include_inactive query bool false "Include deactivated accounts" default(false)
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users [get]
func (u *UserController) ListUsers(c *gin.Context) {
	includeInactive := c.DefaultQuery("include_inactive", "false") == "true"

	users, err := u.userService.List(c.Request.Context(), middleware.ActorFromContext(c), includeInactive)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Users fetched successfully")
}

// CreateUser godoc
// @Summary Create a staff account
// @Description Register a new staff member, founders only
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.CreateUserRequest true "Account payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users [post]
func (u *UserController) CreateUser(c *gin.Context) {
	var req request_models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.Create(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "User created successfully")
}

// ToggleActive godoc
// @Summary Activate or deactivate an account
// @Description Flip the active flag on a staff account, founders only
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id}/toggle-active [post]
func (u *UserController) ToggleActive(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	user, err := u.userService.ToggleActive(c.Request.Context(), middleware.ActorFromContext(c), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

// ChangeRole godoc
// @Summary Change an account's role
// @Description Switch a staff account between founder and freelancer, founders only
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.ChangeRoleRequest true "Role payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/{id}/role [post]
func (u *UserController) ChangeRole(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	var req request_models.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.ChangeRole(c.Request.Context(), middleware.ActorFromContext(c), userID, req.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}
