package controller

import (
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnnouncementController struct {
	AnnouncementService *service.AnnouncementService
}

func NewAnnouncementController(announcementService *service.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{AnnouncementService: announcementService}
}

// Create godoc
// @Summary 发布公告
// @Description publishAt 为空立即发布，否则定时发布
// @Tags 公告
// @Accept  json
// @Produce  json
// @Param   body body service.AnnouncementRequest true "公告内容"
// @Success 201 {object} util.Response{data=model.Announcement}
// @Router /api/teacher/announcements [post]
func (c *AnnouncementController) Create(ctx *gin.Context) {
	var req service.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	announcement, err := c.AnnouncementService.Create(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, announcement)
}

// List godoc
// @Summary 当前用户可见的公告
// @Tags 公告
// @Produce  json
// @Param   page query int false "页码"
// @Param   limit query int false "每页数量"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/announcements [get]
func (c *AnnouncementController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	claims := util.GetUserFromContext(ctx)

	announcements, total, err := c.AnnouncementService.ListForUser(claims.Role, claims.UserID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: announcements, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary 公告详情
// @Tags 公告
// @Produce  json
// @Param   id path int true "公告ID"
// @Success 200 {object} util.Response{data=model.Announcement}
// @Router /api/announcements/{id} [get]
func (c *AnnouncementController) Get(ctx *gin.Context) {
	announcement, err := c.AnnouncementService.Get(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, announcement)
}

// Delete godoc
// @Summary 删除公告
// @Tags 公告
// @Produce  json
// @Param   id path int true "公告ID"
// @Success 200 {object} util.Response
// @Router /api/admin/announcements/{id} [delete]
func (c *AnnouncementController) Delete(ctx *gin.Context) {
	if err := c.AnnouncementService.Delete(pathID(ctx, "id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
