package controller

import (
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
	QuizService       *service.QuizService
}

func NewAssignmentController(assignmentService *service.AssignmentService, quizService *service.QuizService) *AssignmentController {
	return &AssignmentController{
		AssignmentService: assignmentService,
		QuizService:       quizService,
	}
}

// Create godoc
// @Summary 布置作业
// @Tags 作业
// @Accept  json
// @Produce  json
// @Param   body body service.AssignmentRequest true "作业信息"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Router /api/teacher/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	assignment, err := c.AssignmentService.Create(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// Update godoc
// @Summary 更新作业
// @Tags 作业
// @Accept  json
// @Produce  json
// @Param   id path int true "作业ID"
// @Param   body body service.AssignmentRequest true "作业信息"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /api/teacher/assignments/{id} [put]
func (c *AssignmentController) Update(ctx *gin.Context) {
	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	assignment, err := c.AssignmentService.Update(claims.UserID, pathID(ctx, "id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// ListByClass godoc
// @Summary 课程下的作业
// @Tags 作业
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/classes/{id}/assignments [get]
func (c *AssignmentController) ListByClass(ctx *gin.Context) {
	assignments, err := c.AssignmentService.ListByClass(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// Attach godoc
// @Summary 上传作业附件
// @Tags 作业
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path int true "作业ID"
// @Param   file formData file true "附件"
// @Success 200 {object} util.Response{data=model.Assignment}
// @Router /api/teacher/assignments/{id}/attachment [post]
func (c *AssignmentController) Attach(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	claims := util.GetUserFromContext(ctx)
	assignment, err := c.AssignmentService.AttachFile(ctx.Request.Context(), claims.UserID, pathID(ctx, "id"), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// Submit godoc
// @Summary 学生提交作业
// @Description 截止后拒收，重复提交覆盖上一次
// @Tags 作业
// @Accept  multipart/form-data
// @Produce  json
// @Param   id path int true "作业ID"
// @Param   file formData file true "作业文件"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Failure 409 {object} util.Response "已过截止时间"
// @Router /api/student/assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	claims := util.GetUserFromContext(ctx)
	studentID, err := c.QuizService.StudentIDForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	sub, err := c.AssignmentService.Submit(ctx.Request.Context(), studentID, pathID(ctx, "id"), file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}

// Submissions godoc
// @Summary 作业的全部提交
// @Tags 作业
// @Produce  json
// @Param   id path int true "作业ID"
// @Success 200 {object} util.Response{data=[]model.AssignmentSubmission}
// @Router /api/teacher/assignments/{id}/submissions [get]
func (c *AssignmentController) Submissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	subs, err := c.AssignmentService.ListSubmissions(claims.UserID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, subs)
}

type SubmissionGradeRequest struct {
	Score    int    `json:"score" binding:"gte=0"`
	Feedback string `json:"feedback"`
}

// Grade godoc
// @Summary 批改作业
// @Tags 作业
// @Accept  json
// @Produce  json
// @Param   id path int true "提交ID"
// @Param   body body SubmissionGradeRequest true "评分与反馈"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Router /api/teacher/submissions/{id}/grade [post]
func (c *AssignmentController) Grade(ctx *gin.Context) {
	var req SubmissionGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	sub, err := c.AssignmentService.GradeSubmission(claims.UserID, pathID(ctx, "id"), req.Score, req.Feedback)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}
