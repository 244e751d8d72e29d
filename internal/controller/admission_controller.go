package controller

import (
	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdmissionController struct {
	AdmissionService *service.AdmissionService
}

func NewAdmissionController(admissionService *service.AdmissionService) *AdmissionController {
	return &AdmissionController{AdmissionService: admissionService}
}

// Apply godoc
// @Summary 提交入学申请
// @Description 公开入口，无需登录
// @Tags 招生
// @Accept  json
// @Produce  json
// @Param   body body service.ApplicationRequest true "申请信息"
// @Success 201 {object} util.Response{data=model.Applicant}
// @Router /api/admissions/apply [post]
func (c *AdmissionController) Apply(ctx *gin.Context) {
	var req service.ApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	applicant, err := c.AdmissionService.Apply(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, applicant)
}

// List godoc
// @Summary 分页列出申请
// @Tags 招生
// @Produce  json
// @Param   status query string false "状态过滤 pending/approved/rejected"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/admin/admissions [get]
func (c *AdmissionController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	status := model.ApplicantStatus(ctx.Query("status"))

	applicants, total, err := c.AdmissionService.List(status, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: applicants, Total: total, Page: page, Limit: limit})
}

// Get godoc
// @Summary 申请详情
// @Tags 招生
// @Produce  json
// @Param   id path int true "申请ID"
// @Success 200 {object} util.Response{data=model.Applicant}
// @Router /api/admin/admissions/{id} [get]
func (c *AdmissionController) Get(ctx *gin.Context) {
	applicant, err := c.AdmissionService.Get(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, applicant)
}

// Approve godoc
// @Summary 录取申请人
// @Description 创建学生账号与学籍，返回一次性临时密码
// @Tags 招生
// @Produce  json
// @Param   id path int true "申请ID"
// @Success 200 {object} util.Response{data=service.ApprovalResult}
// @Failure 409 {object} util.Response "申请已处理"
// @Router /api/admin/admissions/{id}/approve [post]
func (c *AdmissionController) Approve(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	result, err := c.AdmissionService.Approve(claims.UserID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Reject godoc
// @Summary 拒绝申请
// @Tags 招生
// @Accept  json
// @Produce  json
// @Param   id path int true "申请ID"
// @Param   body body RejectRequest true "拒绝原因"
// @Success 200 {object} util.Response{data=model.Applicant}
// @Router /api/admin/admissions/{id}/reject [post]
func (c *AdmissionController) Reject(ctx *gin.Context) {
	var req RejectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	applicant, err := c.AdmissionService.Reject(claims.UserID, pathID(ctx, "id"), req.Reason)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, applicant)
}
