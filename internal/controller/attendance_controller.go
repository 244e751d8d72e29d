package controller

import (
	"time"

	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *service.AttendanceService
	QuizService       *service.QuizService
}

func NewAttendanceController(attendanceService *service.AttendanceService, quizService *service.QuizService) *AttendanceController {
	return &AttendanceController{
		AttendanceService: attendanceService,
		QuizService:       quizService,
	}
}

type AttendanceSheetRequest struct {
	Date  string                   `json:"date" binding:"required"` // YYYY-MM-DD
	Marks []service.AttendanceMark `json:"marks" binding:"required,dive"`
}

// Record godoc
// @Summary 记录点名
// @Description 同一天重复记录覆盖旧状态
// @Tags 考勤
// @Accept  json
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   body body AttendanceSheetRequest true "点名结果"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord}
// @Router /api/teacher/classes/{id}/attendance [post]
func (c *AttendanceController) Record(ctx *gin.Context) {
	var req AttendanceSheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	date, err := time.Parse(util.DateFormat, req.Date)
	if err != nil {
		util.BadRequest(ctx, "invalid date, expected YYYY-MM-DD")
		return
	}

	claims := util.GetUserFromContext(ctx)
	records, err := c.AttendanceService.RecordAttendance(claims.UserID, pathID(ctx, "id"), date, req.Marks)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// Sheet godoc
// @Summary 某日点名表
// @Tags 考勤
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   date query string true "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.AttendanceRecord}
// @Router /api/teacher/classes/{id}/attendance [get]
func (c *AttendanceController) Sheet(ctx *gin.Context) {
	date, err := time.Parse(util.DateFormat, ctx.Query("date"))
	if err != nil {
		util.BadRequest(ctx, "invalid date, expected YYYY-MM-DD")
		return
	}

	records, err := c.AttendanceService.ClassSheet(pathID(ctx, "id"), date)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// ClassSummary godoc
// @Summary 课程出勤汇总
// @Tags 考勤
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   from query string true "起始日期 YYYY-MM-DD"
// @Param   to query string true "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=service.AttendanceSummary}
// @Router /api/teacher/classes/{id}/attendance/summary [get]
func (c *AttendanceController) ClassSummary(ctx *gin.Context) {
	from, to, err := dateRange(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	summary, err := c.AttendanceService.ClassSummary(pathID(ctx, "id"), from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// MySummary godoc
// @Summary 学生本人出勤汇总
// @Tags 考勤
// @Produce  json
// @Param   from query string true "起始日期 YYYY-MM-DD"
// @Param   to query string true "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=service.AttendanceSummary}
// @Router /api/student/attendance/summary [get]
func (c *AttendanceController) MySummary(ctx *gin.Context) {
	from, to, err := dateRange(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	studentID, err := c.QuizService.StudentIDForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	summary, err := c.AttendanceService.StudentSummary(studentID, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

func dateRange(ctx *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse(util.DateFormat, ctx.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.Parse(util.DateFormat, ctx.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}
