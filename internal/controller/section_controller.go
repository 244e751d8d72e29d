package controller

import (
	"strconv"

	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SectionController struct {
	SectionService *service.SectionService
	ClassService   *service.ClassService
}

func NewSectionController(sectionService *service.SectionService, classService *service.ClassService) *SectionController {
	return &SectionController{
		SectionService: sectionService,
		ClassService:   classService,
	}
}

// Create godoc
// @Summary 创建班级组
// @Tags 班级
// @Accept  json
// @Produce  json
// @Param   body body service.SectionRequest true "班级组信息"
// @Success 201 {object} util.Response{data=model.Section}
// @Router /api/admin/sections [post]
func (c *SectionController) Create(ctx *gin.Context) {
	var req service.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.SectionService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, section)
}

// Update godoc
// @Summary 更新班级组
// @Tags 班级
// @Accept  json
// @Produce  json
// @Param   id path int true "班级组ID"
// @Param   body body service.SectionRequest true "班级组信息"
// @Success 200 {object} util.Response{data=model.Section}
// @Router /api/admin/sections/{id} [put]
func (c *SectionController) Update(ctx *gin.Context) {
	var req service.SectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.SectionService.Update(pathID(ctx, "id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, section)
}

// List godoc
// @Summary 列出班级组
// @Tags 班级
// @Produce  json
// @Param   schoolYear query string false "学年过滤"
// @Param   gradeLevel query int false "年级过滤"
// @Success 200 {object} util.Response{data=[]model.Section}
// @Router /api/sections [get]
func (c *SectionController) List(ctx *gin.Context) {
	gradeLevel, _ := strconv.Atoi(ctx.Query("gradeLevel"))
	sections, err := c.SectionService.List(ctx.Query("schoolYear"), gradeLevel)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, sections)
}

// Get godoc
// @Summary 班级组详情
// @Tags 班级
// @Produce  json
// @Param   id path int true "班级组ID"
// @Success 200 {object} util.Response{data=model.Section}
// @Router /api/sections/{id} [get]
func (c *SectionController) Get(ctx *gin.Context) {
	section, err := c.SectionService.Get(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, section)
}

type EnrollRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
}

// Enroll godoc
// @Summary 学生编入班级组
// @Tags 班级
// @Accept  json
// @Produce  json
// @Param   id path int true "班级组ID"
// @Param   body body EnrollRequest true "学生ID"
// @Success 200 {object} util.Response{data=model.Student}
// @Failure 409 {object} util.Response "班级组已满"
// @Router /api/admin/sections/{id}/enroll [post]
func (c *SectionController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.SectionService.EnrollStudent(pathID(ctx, "id"), req.StudentID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, student)
}

// Roster godoc
// @Summary 班级组花名册
// @Tags 班级
// @Produce  json
// @Param   id path int true "班级组ID"
// @Success 200 {object} util.Response{data=[]model.Student}
// @Router /api/sections/{id}/roster [get]
func (c *SectionController) Roster(ctx *gin.Context) {
	students, err := c.SectionService.Roster(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// Timetable godoc
// @Summary 班级组周课表
// @Tags 课表
// @Produce  json
// @Param   id path int true "班级组ID"
// @Success 200 {object} util.Response{data=service.WeeklyTimetable}
// @Router /api/sections/{id}/timetable [get]
func (c *SectionController) Timetable(ctx *gin.Context) {
	table, err := c.ClassService.SectionTimetable(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, table)
}
