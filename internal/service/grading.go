package service

import (
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/util"
)

// submitGracePeriod 时间限制的提交宽限期，补偿网络延迟
const submitGracePeriod = 30 * time.Second

// SubmittedAnswer 提交载荷中的一条作答
type SubmittedAnswer struct {
	QuestionID       uint   `json:"questionId" binding:"required"`
	SelectedOptionID *uint  `json:"selectedOptionId,omitempty"`
	TextResponse     string `json:"textResponse,omitempty"`
}

// AnswerVerdict 单题判分结果。Pending 为真时 IsCorrect 与 PointsAwarded
// 均为 nil，等待教师人工评分。
type AnswerVerdict struct {
	QuestionID    uint
	IsCorrect     *bool
	PointsAwarded *int
	Pending       bool
}

// EvaluateAnswer 对一道题目和一条作答给出判分。
// 选择题/判断题：选中的选项恰为标记正确的选项则得满分，否则 0 分。
// 简答题：无法自动判分，返回 Pending 状态。
func EvaluateAnswer(q *model.Question, sub SubmittedAnswer) (AnswerVerdict, error) {
	if sub.QuestionID != q.ID {
		return AnswerVerdict{}, util.ErrAnswerNotInQuiz
	}

	verdict := AnswerVerdict{QuestionID: q.ID}

	if q.Type == model.ShortAnswer {
		verdict.Pending = true
		return verdict, nil
	}

	// 选择题未作答按错误处理
	if sub.SelectedOptionID == nil {
		verdict.IsCorrect = boolPtr(false)
		verdict.PointsAwarded = intPtr(0)
		return verdict, nil
	}

	var selected *model.Option
	for i := range q.Options {
		if q.Options[i].ID == *sub.SelectedOptionID {
			selected = &q.Options[i]
			break
		}
	}
	if selected == nil {
		return AnswerVerdict{}, util.ErrOptionNotInQuestion
	}

	if selected.IsCorrect {
		verdict.IsCorrect = boolPtr(true)
		verdict.PointsAwarded = intPtr(q.Points)
	} else {
		verdict.IsCorrect = boolPtr(false)
		verdict.PointsAwarded = intPtr(0)
	}
	return verdict, nil
}

// GradeResult 一次作答整体判分的输出
type GradeResult struct {
	TotalScore    int
	PendingManual bool
	Clamped       bool // total exceeded quiz max score and was capped
	Verdicts      []AnswerVerdict
}

// GradeSubmission 逐题调用 EvaluateAnswer 并汇总总分。
// 同一题出现多条作答视为非法载荷，整体拒绝。
// 待人工评分的简答题暂记 0 分；总分超出测验满分时截断并标记 Clamped，
// 由调用方记录告警。
func GradeSubmission(quiz *model.Quiz, questions []model.Question, answers []SubmittedAnswer) (*GradeResult, error) {
	qMap := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		qMap[questions[i].ID] = &questions[i]
	}

	result := &GradeResult{}
	seen := make(map[uint]bool, len(answers))
	for _, a := range answers {
		q, ok := qMap[a.QuestionID]
		if !ok {
			return nil, util.ErrAnswerNotInQuiz
		}
		if seen[a.QuestionID] {
			return nil, util.ErrDuplicateAnswer
		}
		seen[a.QuestionID] = true
		verdict, err := EvaluateAnswer(q, a)
		if err != nil {
			return nil, err
		}
		if verdict.Pending {
			result.PendingManual = true
		} else if verdict.PointsAwarded != nil {
			result.TotalScore += *verdict.PointsAwarded
		}
		result.Verdicts = append(result.Verdicts, verdict)
	}

	if quiz.MaxScore > 0 && result.TotalScore > quiz.MaxScore {
		result.TotalScore = quiz.MaxScore
		result.Clamped = true
	}
	return result, nil
}

// CanStartAttempt 校验新作答的前置条件：测验已发布、未过截止时间、
// 未达到作答次数上限（0 表示不限次数）。
func CanStartAttempt(quiz *model.Quiz, submittedAttempts int, now time.Time) error {
	switch quiz.Status {
	case model.QuizDraft:
		return util.ErrQuizNotPublished
	case model.QuizClosed:
		return util.ErrQuizClosed
	}
	if quiz.DueDate != nil && now.After(*quiz.DueDate) {
		return util.ErrDueDatePassed
	}
	if quiz.MaxAttempts > 0 && submittedAttempts >= quiz.MaxAttempts {
		return util.ErrMaxAttemptsReached
	}
	return nil
}

// CheckSubmitDeadline 校验提交时点。重复提交被拒绝；设有时间限制的
// 测验在超时（含宽限期）后提交被拒绝。截止时间只限制新作答的开始，
// 已开始的作答允许在截止后提交。
func CheckSubmitDeadline(quiz *model.Quiz, attempt *model.QuizAttempt, now time.Time) error {
	if attempt.Submitted() {
		return util.ErrAttemptSubmitted
	}
	if quiz.TimeLimitMinutes > 0 {
		deadline := attempt.StartedAt.
			Add(time.Duration(quiz.TimeLimitMinutes) * time.Minute).
			Add(submitGracePeriod)
		if now.After(deadline) {
			return util.ErrTimeExpired
		}
	}
	return nil
}

// ValidateQuestionKey 校验题目答案键的完整性：选择题必须恰有一个
// 正确选项，判断题恰有两个选项。发布前对每道题调用。
func ValidateQuestionKey(q *model.Question) error {
	if !q.Type.IsChoice() {
		return nil
	}
	if q.Type == model.TrueFalse && len(q.Options) != 2 {
		return util.ErrCorrectOptionMissing
	}
	correct := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return util.ErrCorrectOptionMissing
	}
	return nil
}

// ValidateManualGrade 校验人工评分目标：仅简答题接受人工评分，
// 选择题和判断题的机判结果不可被覆盖。返回截断到 [0, 题目满分] 的分值。
func ValidateManualGrade(q *model.Question, points int) (int, error) {
	if q.Type != model.ShortAnswer {
		return 0, util.ErrNotManuallyGradable
	}
	if points < 0 {
		points = 0
	}
	if points > q.Points {
		points = q.Points
	}
	return points, nil
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
