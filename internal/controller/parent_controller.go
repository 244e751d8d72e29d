package controller

import (
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ParentController 家长端：查看名下学生的成绩、考勤与测验结果
type ParentController struct {
	ParentService     *service.ParentService
	GradebookService  *service.GradebookService
	AttendanceService *service.AttendanceService
	QuizService       *service.QuizService
}

func NewParentController(parentService *service.ParentService, gradebookService *service.GradebookService, attendanceService *service.AttendanceService, quizService *service.QuizService) *ParentController {
	return &ParentController{
		ParentService:     parentService,
		GradebookService:  gradebookService,
		AttendanceService: attendanceService,
		QuizService:       quizService,
	}
}

// CreateGuardian godoc
// @Summary 创建家长账号
// @Tags 家长
// @Accept  json
// @Produce  json
// @Param   body body service.GuardianCreateRequest true "家长信息"
// @Success 201 {object} util.Response{data=model.Guardian}
// @Router /api/admin/guardians [post]
func (c *ParentController) CreateGuardian(ctx *gin.Context) {
	var req service.GuardianCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	guardian, err := c.ParentService.CreateGuardian(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, guardian)
}

type LinkStudentRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
}

// LinkStudent godoc
// @Summary 关联学生到监护人
// @Tags 家长
// @Accept  json
// @Produce  json
// @Param   id path int true "监护人ID"
// @Param   body body LinkStudentRequest true "学生ID"
// @Success 200 {object} util.Response{data=model.Student}
// @Router /api/admin/guardians/{id}/students [post]
func (c *ParentController) LinkStudent(ctx *gin.Context) {
	var req LinkStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.ParentService.LinkStudent(pathID(ctx, "id"), req.StudentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// Children godoc
// @Summary 名下学生列表
// @Tags 家长
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Student}
// @Router /api/parent/children [get]
func (c *ParentController) Children(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	children, err := c.ParentService.Children(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, children)
}

// ChildGrades godoc
// @Summary 孩子的成绩
// @Tags 家长
// @Produce  json
// @Param   id path int true "学生ID"
// @Param   term query string false "学期过滤"
// @Success 200 {object} util.Response{data=[]model.GradeEntry}
// @Failure 403 {object} util.Response "无监护关系"
// @Router /api/parent/children/{id}/grades [get]
func (c *ParentController) ChildGrades(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	studentID := pathID(ctx, "id")
	if _, err := c.ParentService.AuthorizeChild(claims.UserID, studentID); err != nil {
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

// ChildAttendance godoc
// @Summary 孩子的出勤汇总
// @Tags 家长
// @Produce  json
// @Param   id path int true "学生ID"
// @Param   from query string true "起始日期 YYYY-MM-DD"
// @Param   to query string true "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=service.AttendanceSummary}
// @Router /api/parent/children/{id}/attendance [get]
func (c *ParentController) ChildAttendance(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	studentID := pathID(ctx, "id")
	if _, err := c.ParentService.AuthorizeChild(claims.UserID, studentID); err != nil {
		respondError(ctx, err)
		return
	}

	from, to, err := dateRange(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.AttendanceService.StudentSummary(studentID, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// ChildQuizResult godoc
// @Summary 孩子某测验的最近成绩
// @Tags 家长
// @Produce  json
// @Param   id path int true "学生ID"
// @Param   quizId path int true "测验ID"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Router /api/parent/children/{id}/quizzes/{quizId}/result [get]
func (c *ParentController) ChildQuizResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	studentID := pathID(ctx, "id")
	if _, err := c.ParentService.AuthorizeChild(claims.UserID, studentID); err != nil {
		respondError(ctx, err)
		return
	}

	attempt, err := c.QuizService.GetCurrentAttempt(studentID, pathID(ctx, "quizId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}
