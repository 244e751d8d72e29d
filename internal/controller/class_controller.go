package controller

import (
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ClassController struct {
	ClassService *service.ClassService
}

func NewClassController(classService *service.ClassService) *ClassController {
	return &ClassController{ClassService: classService}
}

// Create godoc
// @Summary 创建学科课程
// @Tags 课程
// @Accept  json
// @Produce  json
// @Param   body body service.ClassRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Class}
// @Router /api/admin/classes [post]
func (c *ClassController) Create(ctx *gin.Context) {
	var req service.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, class)
}

// Update godoc
// @Summary 更新学科课程
// @Tags 课程
// @Accept  json
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   body body service.ClassRequest true "课程信息"
// @Success 200 {object} util.Response{data=model.Class}
// @Router /api/admin/classes/{id} [put]
func (c *ClassController) Update(ctx *gin.Context) {
	var req service.ClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.Update(pathID(ctx, "id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

// Get godoc
// @Summary 课程详情
// @Tags 课程
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Class}
// @Router /api/classes/{id} [get]
func (c *ClassController) Get(ctx *gin.Context) {
	class, err := c.ClassService.Get(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

type ScheduleRequest struct {
	Slots []service.SlotRequest `json:"slots" binding:"required,dive"`
}

// SetSchedule godoc
// @Summary 设置课程时段
// @Description 整体替换课程的每周时段，检测与同班级组、同教师课程的冲突
// @Tags 课表
// @Accept  json
// @Produce  json
// @Param   id path int true "课程ID"
// @Param   body body ScheduleRequest true "时段列表"
// @Success 200 {object} util.Response{data=model.Class}
// @Failure 409 {object} util.Response "时段冲突"
// @Router /api/admin/classes/{id}/schedule [put]
func (c *ClassController) SetSchedule(ctx *gin.Context) {
	var req ScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	class, err := c.ClassService.SetSchedule(pathID(ctx, "id"), req.Slots)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, class)
}

// MyClasses godoc
// @Summary 教师名下的课程
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Class}
// @Router /api/teacher/classes [get]
func (c *ClassController) MyClasses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	classes, err := c.ClassService.ListByTeacher(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}

// MyTimetable godoc
// @Summary 教师授课周课表
// @Tags 课表
// @Produce  json
// @Success 200 {object} util.Response{data=service.WeeklyTimetable}
// @Router /api/teacher/timetable [get]
func (c *ClassController) MyTimetable(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	table, err := c.ClassService.TeacherTimetable(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, table)
}

// ListBySection godoc
// @Summary 班级组下的课程
// @Tags 课程
// @Produce  json
// @Param   id path int true "班级组ID"
// @Success 200 {object} util.Response{data=[]model.Class}
// @Router /api/sections/{id}/classes [get]
func (c *ClassController) ListBySection(ctx *gin.Context) {
	classes, err := c.ClassService.ListBySection(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, classes)
}
