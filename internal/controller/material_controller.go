package controller

import (
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MaterialController struct {
	MaterialService *service.MaterialService
}

func NewMaterialController(materialService *service.MaterialService) *MaterialController {
	return &MaterialController{MaterialService: materialService}
}

// Upload godoc
// @Summary 上传课程资料
// @Description 视频文件自动提取时长
// @Tags 资料
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   title formData string true "标题"
// @Param   description formData string false "描述"
// @Param   file formData file true "资料文件"
// @Success 201 {object} util.Response{data=model.LearningMaterial}
// @Router /api/teacher/classes/{id}/materials [post]
func (c *MaterialController) Upload(ctx *gin.Context) {
	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	claims := util.GetUserFromContext(ctx)
	material, err := c.MaterialService.Upload(ctx.Request.Context(), claims.UserID, pathID(ctx, "id"), title, ctx.PostForm("description"), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, material)
}

// ListByClass godoc
// @Summary 课程资料列表
// @Tags 资料
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.LearningMaterial}
// @Router /api/classes/{id}/materials [get]
func (c *MaterialController) ListByClass(ctx *gin.Context) {
	materials, err := c.MaterialService.ListByClass(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, materials)
}

// Delete godoc
// @Summary 删除课程资料
// @Tags 资料
// @Produce  json
// @Param   id path int true "资料ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.MaterialService.Delete(ctx.Request.Context(), claims.UserID, pathID(ctx, "id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
