package controller

import (
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// QuizController 教师端测验管理
type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// Create godoc
// @Summary 创建测验
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   body body service.QuizCreateRequest true "测验信息"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Router /api/teacher/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	var req service.QuizCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, err := c.QuizService.CreateQuiz(claims.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// Update godoc
// @Summary 更新测验
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   id path int true "测验ID"
// @Param   body body service.QuizCreateRequest true "测验信息"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/teacher/quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	var req service.QuizCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	quiz, err := c.QuizService.UpdateQuiz(claims.UserID, pathID(ctx, "id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// Get godoc
// @Summary 测验详情（含题目与答案）
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/teacher/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuiz(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// ListByClass godoc
// @Summary 课程下的全部测验
// @Tags 测验
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/teacher/classes/{id}/quizzes [get]
func (c *QuizController) ListByClass(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListByClass(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// AddQuestion godoc
// @Summary 添加题目
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   id path int true "测验ID"
// @Param   body body service.QuestionRequest true "题目"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 409 {object} util.Response "已有作答，题目冻结"
// @Router /api/teacher/quizzes/{id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	question, err := c.QuizService.AddQuestion(claims.UserID, pathID(ctx, "id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary 更新题目
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   id path int true "测验ID"
// @Param   qid path int true "题目ID"
// @Param   body body service.QuestionRequest true "题目"
// @Success 200 {object} util.Response{data=model.Question}
// @Router /api/teacher/quizzes/{id}/questions/{qid} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	question, err := c.QuizService.UpdateQuestion(claims.UserID, pathID(ctx, "id"), pathID(ctx, "qid"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary 删除题目
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Param   qid path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/teacher/quizzes/{id}/questions/{qid} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.QuizService.DeleteQuestion(claims.UserID, pathID(ctx, "id"), pathID(ctx, "qid")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Publish godoc
// @Summary 发布测验
// @Description 校验每道选择题恰有一个正确选项后开放作答
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 422 {object} util.Response "选择题答案配置不合法"
// @Router /api/teacher/quizzes/{id}/publish [post]
func (c *QuizController) Publish(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	quiz, err := c.QuizService.PublishQuiz(claims.UserID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// Close godoc
// @Summary 关闭测验
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/teacher/quizzes/{id}/close [post]
func (c *QuizController) Close(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	quiz, err := c.QuizService.CloseQuiz(claims.UserID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// PendingGrading godoc
// @Summary 待人工评分的作答
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /api/teacher/quizzes/{id}/pending [get]
func (c *QuizController) PendingGrading(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	attempts, err := c.QuizService.ListPendingManual(claims.UserID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

type ManualGradeRequest struct {
	QuestionID uint  `json:"questionId" binding:"required"`
	Points     int   `json:"points" binding:"gte=0"`
	Correct    *bool `json:"correct" binding:"required"`
}

// GradeAnswer godoc
// @Summary 人工评定简答题
// @Description 评定后立即重算该次作答总分
// @Tags 测验
// @Accept  json
// @Produce  json
// @Param   id path int true "作答ID"
// @Param   body body ManualGradeRequest true "评分"
// @Success 200 {object} util.Response
// @Router /api/teacher/attempts/{id}/grade [post]
func (c *QuizController) GradeAnswer(ctx *gin.Context) {
	var req ManualGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	err := c.QuizService.GradeShortAnswer(claims.UserID, pathID(ctx, "id"), req.QuestionID, req.Points, *req.Correct)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Statistics godoc
// @Summary 测验统计报表
// @Description 参与率、平均分、及格率与每题正确率
// @Tags 测验
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=service.QuizStatistics}
// @Router /api/teacher/quizzes/{id}/statistics [get]
func (c *QuizController) Statistics(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	stats, err := c.QuizService.GetStatistics(claims.UserID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
