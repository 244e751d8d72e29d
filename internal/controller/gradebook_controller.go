package controller

import (
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GradebookController struct {
	GradebookService *service.GradebookService
	QuizService      *service.QuizService
}

func NewGradebookController(gradebookService *service.GradebookService, quizService *service.QuizService) *GradebookController {
	return &GradebookController{
		GradebookService: gradebookService,
		QuizService:      quizService,
	}
}

// Record godoc
// @Summary 录入成绩
// @Tags 成绩册
// @Accept  json
// @Produce  json
// @Param   body body service.GradeEntryRequest true "成绩记录"
// @Success 201 {object} util.Response{data=model.GradeEntry}
// @Router /api/teacher/grades [post]
func (c *GradebookController) Record(ctx *gin.Context) {
	var req service.GradeEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	entry, err := c.GradebookService.Record(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

type GradeUpdateRequest struct {
	Score float64 `json:"score" binding:"gte=0"`
}

// Update godoc
// @Summary 修改成绩
// @Tags 成绩册
// @Accept  json
// @Produce  json
// @Param   id path int true "成绩记录ID"
// @Param   body body GradeUpdateRequest true "分数"
// @Success 200 {object} util.Response{data=model.GradeEntry}
// @Router /api/teacher/grades/{id} [put]
func (c *GradebookController) Update(ctx *gin.Context) {
	var req GradeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	entry, err := c.GradebookService.UpdateEntry(claims.UserID, pathID(ctx, "id"), req.Score)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// Delete godoc
// @Summary 删除成绩记录
// @Tags 成绩册
// @Produce  json
// @Param   id path int true "成绩记录ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/grades/{id} [delete]
func (c *GradebookController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.GradebookService.DeleteEntry(claims.UserID, pathID(ctx, "id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ClassGrades godoc
// @Summary 课程成绩册
// @Tags 成绩册
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   term query string false "学期过滤"
// @Success 200 {object} util.Response{data=[]model.GradeEntry}
// @Router /api/teacher/classes/{id}/grades [get]
func (c *GradebookController) ClassGrades(ctx *gin.Context) {
	entries, err := c.GradebookService.ListForClass(pathID(ctx, "id"), ctx.Query("term"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// MyGrades godoc
// @Summary 学生查看自己的成绩
// @Tags 成绩册
// @Produce  json
// @Param   term query string false "学期过滤"
// @Success 200 {object} util.Response{data=[]model.GradeEntry}
// @Router /api/student/grades [get]
func (c *GradebookController) MyGrades(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	studentID, err := c.QuizService.StudentIDForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	entries, err := c.GradebookService.ListForStudent(studentID, ctx.Query("term"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// MyClassSummary godoc
// @Summary 学生单科成绩汇总
// @Tags 成绩册
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   term query string true "学期"
// @Success 200 {object} util.Response{data=service.StudentClassSummary}
// @Router /api/student/classes/{id}/summary [get]
func (c *GradebookController) MyClassSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	studentID, err := c.QuizService.StudentIDForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	summary, err := c.GradebookService.StudentClassSummary(studentID, pathID(ctx, "id"), ctx.Query("term"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
