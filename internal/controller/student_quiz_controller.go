package controller

import (
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/service"
	"schoolhub_backend/internal/util"
	"schoolhub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// StudentQuizController 学生端测验作答
type StudentQuizController struct {
	QuizService *service.QuizService
}

func NewStudentQuizController(quizService *service.QuizService) *StudentQuizController {
	return &StudentQuizController{QuizService: quizService}
}

// StudentOptionView 学生可见的选项，不含正误标记
type StudentOptionView struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type StudentQuestionView struct {
	ID      uint                `json:"id"`
	Order   int                 `json:"order"`
	Type    model.QuestionType  `json:"type"`
	Prompt  string              `json:"prompt"`
	Points  int                 `json:"points"`
	Options []StudentOptionView `json:"options,omitempty"`
}

type StudentQuizView struct {
	ID               uint                  `json:"id"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Instructions     string                `json:"instructions"`
	TimeLimitMinutes int                   `json:"timeLimitMinutes"`
	DueDate          *time.Time            `json:"dueDate,omitempty"`
	MaxScore         int                   `json:"maxScore"`
	MaxAttempts      int                   `json:"maxAttempts"`
	Questions        []StudentQuestionView `json:"questions"`
}

func toStudentView(quiz *model.Quiz) StudentQuizView {
	view := StudentQuizView{
		ID:               quiz.ID,
		Title:            quiz.Title,
		Description:      quiz.Description,
		Instructions:     quiz.Instructions,
		TimeLimitMinutes: quiz.TimeLimitMinutes,
		DueDate:          quiz.DueDate,
		MaxScore:         quiz.MaxScore,
		MaxAttempts:      quiz.MaxAttempts,
	}
	for _, q := range quiz.Questions {
		qv := StudentQuestionView{
			ID:     q.ID,
			Order:  q.Order,
			Type:   q.Type,
			Prompt: q.Prompt,
			Points: q.Points,
		}
		for _, o := range q.Options {
			qv.Options = append(qv.Options, StudentOptionView{
				ID:    o.ID,
				Text:  o.Text,
				Order: o.Order,
			})
		}
		view.Questions = append(view.Questions, qv)
	}
	return view
}

// ListPublished godoc
// @Summary 课程下开放的测验
// @Tags 作答
// @Produce  json
// @Param   id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/student/classes/{id}/quizzes [get]
func (c *StudentQuizController) ListPublished(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListPublishedByClass(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Get godoc
// @Summary 测验题目（学生视角，不含答案）
// @Tags 作答
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=StudentQuizView}
// @Router /api/student/quizzes/{id} [get]
func (c *StudentQuizController) Get(ctx *gin.Context) {
	quiz, err := c.QuizService.GetQuiz(pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if quiz.Status == model.QuizDraft {
		util.Error(ctx, 404, util.ErrQuizNotFound.Error())
		return
	}
	util.Success(ctx, toStudentView(quiz))
}

// Start godoc
// @Summary 开始作答
// @Description 校验发布状态、截止时间与剩余次数后创建作答；
// @Description 存在未提交的作答时恢复该次而不是新开
// @Tags 作答
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 201 {object} util.Response{data=model.QuizAttempt}
// @Failure 409 {object} util.Response "测验未开放或次数用尽"
// @Router /api/student/quizzes/{id}/attempts [post]
func (c *StudentQuizController) Start(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	studentID, err := c.QuizService.StudentIDForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	attempt, err := c.QuizService.StartAttempt(studentID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, attempt)
}

type SubmitRequest struct {
	Answers []service.SubmittedAnswer `json:"answers" binding:"required,dive"`
}

// Submit godoc
// @Summary 提交作答
// @Description 自动评分客观题，简答题转入人工评分队列
// @Tags 作答
// @Accept  json
// @Produce  json
// @Param   id path int true "作答ID"
// @Param   body body SubmitRequest true "答案列表"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 409 {object} util.Response "已提交或超时"
// @Router /api/student/attempts/{id}/submit [post]
func (c *StudentQuizController) Submit(ctx *gin.Context) {
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	studentID, err := c.QuizService.StudentIDForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	attempt, err := c.QuizService.SubmitAttempt(studentID, pathID(ctx, "id"), req.Answers)
	if err != nil {
		monitoring.QuizSubmissionCounter.WithLabelValues("rejected").Inc()
		respondError(ctx, err)
		return
	}

	monitoring.QuizSubmissionCounter.WithLabelValues("accepted").Inc()
	util.Success(ctx, attempt)
}

// Result godoc
// @Summary 最近一次已提交作答的成绩
// @Tags 作答
// @Produce  json
// @Param   id path int true "测验ID"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Router /api/student/quizzes/{id}/result [get]
func (c *StudentQuizController) Result(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	studentID, err := c.QuizService.StudentIDForUser(claims.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	attempt, err := c.QuizService.GetCurrentAttempt(studentID, pathID(ctx, "id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}
