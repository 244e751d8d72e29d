package controller

import (
	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// CreateStaff godoc
// @Summary 创建教职工账号
// @Description 管理员创建教师或管理员账号
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   body body service.StaffCreateRequest true "账号信息"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Router /api/admin/users [post]
func (c *UserController) CreateStaff(ctx *gin.Context) {
	var req service.StaffCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.CreateStaff(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// List godoc
// @Summary 按角色分页列出用户
// @Tags 用户
// @Produce  json
// @Param   role query string false "角色过滤"
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/users [get]
func (c *UserController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	role := model.UserRole(ctx.Query("role"))

	users, total, err := c.UserService.ListByRole(role, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: users, Total: total, Page: page, Limit: limit})
}

type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" binding:"required"`
}

// SetDisabled godoc
// @Summary 启用/停用账号
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   id path int true "用户ID"
// @Param   body body SetDisabledRequest true "停用标记"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/admin/users/{id}/disabled [put]
func (c *UserController) SetDisabled(ctx *gin.Context) {
	var req SetDisabledRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.SetDisabled(pathID(ctx, "id"), *req.Disabled)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UpdateProfile godoc
// @Summary 更新个人资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   body body service.ProfileUpdateRequest true "资料"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/me/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req service.ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
