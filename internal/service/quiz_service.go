package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"
	"schoolhub_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const statsCacheTTL = time.Minute

type QuizService struct {
	QuizRepo       *repository.QuizRepository
	AttemptRepo    *repository.AttemptRepository
	ClassRepo      *repository.ClassRepository
	StudentRepo    *repository.StudentRepository
	Redis          *redis.Client
	PassingPercent int
}

func NewQuizService(quizRepo *repository.QuizRepository, attemptRepo *repository.AttemptRepository, classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository, rdb *redis.Client, passingPercent int) *QuizService {
	return &QuizService{
		QuizRepo:       quizRepo,
		AttemptRepo:    attemptRepo,
		ClassRepo:      classRepo,
		StudentRepo:    studentRepo,
		Redis:          rdb,
		PassingPercent: passingPercent,
	}
}

type QuizCreateRequest struct {
	ClassID          uint       `json:"classId" binding:"required"`
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	Instructions     string     `json:"instructions"`
	TimeLimitMinutes int        `json:"timeLimitMinutes"`
	DueDate          *time.Time `json:"dueDate"`
	MaxAttempts      int        `json:"maxAttempts"`
}

type OptionRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionRequest struct {
	Type    model.QuestionType `json:"type" binding:"required"`
	Prompt  string             `json:"prompt" binding:"required"`
	Points  int                `json:"points" binding:"required,gt=0"`
	Options []OptionRequest    `json:"options"`
}

// clampAttemptCap 负数按 0（不限次数）处理
func clampAttemptCap(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func (s *QuizService) CreateQuiz(teacherID uint, req QuizCreateRequest) (*model.Quiz, error) {
	class, err := s.ClassRepo.FindByID(req.ClassID)
	if err != nil {
		return nil, util.ErrClassNotFound
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	quiz := &model.Quiz{
		ClassID:          req.ClassID,
		TeacherID:        teacherID,
		Title:            req.Title,
		Description:      req.Description,
		Instructions:     req.Instructions,
		TimeLimitMinutes: req.TimeLimitMinutes,
		DueDate:          req.DueDate,
		MaxAttempts:      clampAttemptCap(req.MaxAttempts),
		Status:           model.QuizDraft,
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) UpdateQuiz(teacherID, quizID uint, req QuizCreateRequest) (*model.Quiz, error) {
	quiz, err := s.ownedQuiz(teacherID, quizID)
	if err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.Instructions = req.Instructions
	quiz.TimeLimitMinutes = req.TimeLimitMinutes
	quiz.DueDate = req.DueDate
	quiz.MaxAttempts = clampAttemptCap(req.MaxAttempts)
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) GetQuiz(quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListByClass(classID uint) ([]model.Quiz, error) {
	return s.QuizRepo.ListByClass(classID)
}

func (s *QuizService) ListPublishedByClass(classID uint) ([]model.Quiz, error) {
	return s.QuizRepo.ListPublishedByClass(classID)
}

// AddQuestion 向草稿测验追加题目。已有作答的测验题目被冻结。
func (s *QuizService) AddQuestion(teacherID, quizID uint, req QuestionRequest) (*model.Question, error) {
	quiz, err := s.ownedQuiz(teacherID, quizID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureQuestionsMutable(quiz); err != nil {
		return nil, err
	}

	order, err := s.QuizRepo.NextQuestionOrder(quizID)
	if err != nil {
		return nil, err
	}

	question := &model.Question{
		QuizID: quizID,
		Order:  order,
		Type:   req.Type,
		Prompt: req.Prompt,
		Points: req.Points,
	}
	for i, o := range req.Options {
		question.Options = append(question.Options, model.Option{
			Text:      o.Text,
			IsCorrect: o.IsCorrect,
			Order:     i + 1,
		})
	}
	if err := s.QuizRepo.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuizService) UpdateQuestion(teacherID, quizID, questionID uint, req QuestionRequest) (*model.Question, error) {
	quiz, err := s.ownedQuiz(teacherID, quizID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureQuestionsMutable(quiz); err != nil {
		return nil, err
	}

	question, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return nil, err
	}
	if question.QuizID != quizID {
		return nil, util.ErrAnswerNotInQuiz
	}

	question.Type = req.Type
	question.Prompt = req.Prompt
	question.Points = req.Points
	if err := s.QuizRepo.UpdateQuestion(question); err != nil {
		return nil, err
	}

	var options []model.Option
	for i, o := range req.Options {
		options = append(options, model.Option{
			Text:      o.Text,
			IsCorrect: o.IsCorrect,
			Order:     i + 1,
		})
	}
	if err := s.QuizRepo.ReplaceOptions(questionID, options); err != nil {
		return nil, err
	}
	question.Options = options
	return question, nil
}

func (s *QuizService) DeleteQuestion(teacherID, quizID, questionID uint) error {
	quiz, err := s.ownedQuiz(teacherID, quizID)
	if err != nil {
		return err
	}
	if err := s.ensureQuestionsMutable(quiz); err != nil {
		return err
	}

	question, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return err
	}
	if question.QuizID != quizID {
		return util.ErrAnswerNotInQuiz
	}
	return s.QuizRepo.DeleteQuestion(questionID)
}

// PublishQuiz 发布测验。发布前校验每道选择题恰有一个正确选项，
// 并以题目分值总和作为测验满分。
func (s *QuizService) PublishQuiz(teacherID, quizID uint) (*model.Quiz, error) {
	quiz, err := s.ownedQuiz(teacherID, quizID)
	if err != nil {
		return nil, err
	}

	full, err := s.QuizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, err
	}

	maxScore := 0
	for i := range full.Questions {
		if err := ValidateQuestionKey(&full.Questions[i]); err != nil {
			return nil, err
		}
		maxScore += full.Questions[i].Points
	}

	now := time.Now()
	quiz.Status = model.QuizPublished
	quiz.MaxScore = maxScore
	quiz.PublishedAt = &now
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) CloseQuiz(teacherID, quizID uint) (*model.Quiz, error) {
	quiz, err := s.ownedQuiz(teacherID, quizID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	quiz.Status = model.QuizClosed
	quiz.ClosedAt = &now
	if err := s.QuizRepo.Update(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// StartAttempt 开始一次新作答。次数上限在仓储层事务内再次校验，
// 避免并发提交同时通过检查。
func (s *QuizService) StartAttempt(studentID, quizID uint) (*model.QuizAttempt, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		return nil, util.ErrQuizNotFound
	}

	submitted, err := s.AttemptRepo.CountSubmitted(quizID, studentID)
	if err != nil {
		return nil, err
	}
	if err := CanStartAttempt(quiz, int(submitted), time.Now()); err != nil {
		return nil, err
	}

	// 恢复未提交的作答而不是重复开新
	if existing, err := s.AttemptRepo.FindInProgress(quizID, studentID); err == nil {
		return existing, nil
	}

	attempt := &model.QuizAttempt{
		QuizID:    quizID,
		StudentID: studentID,
		StartedAt: time.Now(),
	}
	if err := s.AttemptRepo.CreateWithAttemptCap(attempt, quiz.MaxAttempts); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SubmitAttempt 评分并提交作答。作答只能提交一次；重复提交返回
// ErrAttemptSubmitted 且不改动已存成绩。
func (s *QuizService) SubmitAttempt(studentID, attemptID uint, answers []SubmittedAnswer) (*model.QuizAttempt, error) {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		return nil, util.ErrAttemptNotFound
	}
	if attempt.StudentID != studentID {
		return nil, util.ErrPermissionDenied
	}

	quiz, err := s.QuizRepo.FindByIDWithQuestions(attempt.QuizID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := CheckSubmitDeadline(quiz, attempt, now); err != nil {
		return nil, err
	}

	result, err := GradeSubmission(quiz, quiz.Questions, answers)
	if err != nil {
		return nil, err
	}
	if result.Clamped {
		logger.Log.Warn("attempt score exceeded quiz max score, clamped",
			zap.Uint("attemptId", attempt.ID),
			zap.Uint("quizId", quiz.ID),
			zap.Int("maxScore", quiz.MaxScore))
	}

	attempt.SubmittedAt = &now
	attempt.TimeSpentSeconds = int(now.Sub(attempt.StartedAt).Seconds())
	attempt.TotalScore = &result.TotalScore
	attempt.PendingManual = result.PendingManual

	answerRows := make([]model.QuizAnswer, 0, len(result.Verdicts))
	for i, v := range result.Verdicts {
		answerRows = append(answerRows, model.QuizAnswer{
			AttemptID:        attempt.ID,
			QuestionID:       v.QuestionID,
			SelectedOptionID: answers[i].SelectedOptionID,
			TextResponse:     answers[i].TextResponse,
			IsCorrect:        v.IsCorrect,
			PointsAwarded:    v.PointsAwarded,
		})
	}
	if err := s.AttemptRepo.SaveGraded(attempt, answerRows); err != nil {
		return nil, err
	}

	s.invalidateStatsCache(quiz.ID)
	return attempt, nil
}

// GetCurrentAttempt 学生视角的"当前"作答：最近提交的一次
func (s *QuizService) GetCurrentAttempt(studentID, quizID uint) (*model.QuizAttempt, error) {
	attempt, err := s.AttemptRepo.FindLatestSubmitted(quizID, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return attempt, nil
}

func (s *QuizService) ListPendingManual(teacherID, quizID uint) ([]model.QuizAttempt, error) {
	if _, err := s.ownedQuiz(teacherID, quizID); err != nil {
		return nil, err
	}
	return s.AttemptRepo.ListPendingManual(quizID)
}

// GradeShortAnswer 教师人工评定一条简答题作答，随后显式重算作答总分。
func (s *QuizService) GradeShortAnswer(teacherID, attemptID, questionID uint, points int, correct bool) error {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		return util.ErrAttemptNotFound
	}
	if _, err := s.ownedQuiz(teacherID, attempt.QuizID); err != nil {
		return err
	}

	question, err := s.QuizRepo.FindQuestionByID(questionID)
	if err != nil {
		return err
	}
	if question.QuizID != attempt.QuizID {
		return util.ErrAnswerNotInQuiz
	}
	points, err = ValidateManualGrade(question, points)
	if err != nil {
		return err
	}

	answer, err := s.AttemptRepo.FindAnswer(attemptID, questionID)
	if err != nil {
		return err
	}

	now := time.Now()
	answer.IsCorrect = &correct
	answer.PointsAwarded = &points
	answer.GradedBy = &teacherID
	answer.GradedAt = &now
	if err := s.AttemptRepo.UpdateAnswer(answer); err != nil {
		return err
	}

	return s.RecomputeAttemptTotal(attemptID)
}

// RecomputeAttemptTotal 重算作答总分：所有已判分题目得分之和，
// 截断至测验满分。人工评分动作完成后必须调用。
func (s *QuizService) RecomputeAttemptTotal(attemptID uint) error {
	attempt, err := s.AttemptRepo.FindByID(attemptID)
	if err != nil {
		return err
	}
	quiz, err := s.QuizRepo.FindByID(attempt.QuizID)
	if err != nil {
		return err
	}
	answers, err := s.AttemptRepo.GetAnswers(attemptID)
	if err != nil {
		return err
	}

	total := 0
	pending := false
	for _, a := range answers {
		if a.PointsAwarded == nil {
			pending = true
			continue
		}
		total += *a.PointsAwarded
	}
	if quiz.MaxScore > 0 && total > quiz.MaxScore {
		logger.Log.Warn("recomputed score exceeded quiz max score, clamped",
			zap.Uint("attemptId", attemptID),
			zap.Uint("quizId", quiz.ID))
		total = quiz.MaxScore
	}

	attempt.TotalScore = &total
	attempt.PendingManual = pending
	if err := s.AttemptRepo.Update(attempt); err != nil {
		return err
	}

	s.invalidateStatsCache(quiz.ID)
	return nil
}

// GetStatistics 计算教师端统计报表，结果短期缓存于 Redis。
func (s *QuizService) GetStatistics(teacherID, quizID uint) (*QuizStatistics, error) {
	if _, err := s.ownedQuiz(teacherID, quizID); err != nil {
		return nil, err
	}

	ctx := context.Background()
	cacheKey := statsCacheKey(quizID)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats QuizStatistics
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	quiz, err := s.QuizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, err
	}
	attempts, err := s.AttemptRepo.ListSubmittedByQuiz(quizID)
	if err != nil {
		return nil, err
	}

	rosterSize := 0
	if class, err := s.ClassRepo.FindByID(quiz.ClassID); err == nil {
		if count, err := s.StudentRepo.CountBySection(class.SectionID); err == nil {
			rosterSize = int(count)
		}
	}

	stats := ComputeQuizStatistics(quiz, quiz.Questions, attempts, rosterSize, s.PassingPercent)

	if s.Redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			s.Redis.Set(ctx, cacheKey, payload, statsCacheTTL)
		}
	}
	return &stats, nil
}

// CloseOverdueQuizzes 关闭已过截止时间的测验，由定时任务触发
func (s *QuizService) CloseOverdueQuizzes() error {
	quizzes, err := s.QuizRepo.ListOverduePublished()
	if err != nil {
		return err
	}
	now := time.Now()
	for i := range quizzes {
		quizzes[i].Status = model.QuizClosed
		quizzes[i].ClosedAt = &now
		if err := s.QuizRepo.Update(&quizzes[i]); err != nil {
			logger.Log.Error("failed to close overdue quiz",
				zap.Uint("quizId", quizzes[i].ID), zap.Error(err))
			continue
		}
		logger.Log.Info("closed overdue quiz", zap.Uint("quizId", quizzes[i].ID))
	}
	return nil
}

// StudentIDForUser 由登录用户换取学籍 ID
func (s *QuizService) StudentIDForUser(userID uint) (uint, error) {
	student, err := s.StudentRepo.FindByUserID(userID)
	if err != nil {
		return 0, util.ErrStudentNotFound
	}
	return student.ID, nil
}

func (s *QuizService) ownedQuiz(teacherID, quizID uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if quiz.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}
	return quiz, nil
}

func (s *QuizService) ensureQuestionsMutable(quiz *model.Quiz) error {
	var count int64
	err := s.AttemptRepo.DB.Model(&model.QuizAttempt{}).
		Where("quiz_id = ?", quiz.ID).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return util.ErrQuizHasAttempts
	}
	return nil
}

func statsCacheKey(quizID uint) string {
	return "quiz:stats:" + util.FormatUint(quizID)
}

func (s *QuizService) invalidateStatsCache(quizID uint) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), statsCacheKey(quizID))
}
