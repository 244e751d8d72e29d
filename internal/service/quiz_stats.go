package service

import (
	"schoolhub_backend/internal/model"
)

// QuestionStat 单题统计
type QuestionStat struct {
	QuestionID  uint    `json:"questionId"`
	Order       int     `json:"order"`
	Prompt      string  `json:"prompt"`
	CorrectRate float64 `json:"correctRate"` // percent of attempts answering correctly
}

// QuizStatistics 面向教师的测验统计报表
type QuizStatistics struct {
	QuizID        uint           `json:"quizId"`
	RosterSize    int            `json:"rosterSize"`
	AttemptCount  int            `json:"attemptCount"`
	AttemptRate   float64        `json:"attemptRate"`  // percent
	AverageScore  float64        `json:"averageScore"` // points
	PassRate      float64        `json:"passRate"`     // percent
	QuestionStats []QuestionStat `json:"questionStats"`
}

// ComputeQuizStatistics 汇总一个测验全部已提交作答的班级统计。
// 纯函数，空作答集、花名册为 0、满分为 0 时各项指标退化为 0，
// 不会发生除零。
func ComputeQuizStatistics(quiz *model.Quiz, questions []model.Question, attempts []model.QuizAttempt, rosterSize, passingPercent int) QuizStatistics {
	stats := QuizStatistics{
		QuizID:     quiz.ID,
		RosterSize: rosterSize,
	}

	stats.AttemptCount = len(attempts)
	if rosterSize > 0 {
		stats.AttemptRate = float64(stats.AttemptCount) / float64(rosterSize) * 100
	}

	if stats.AttemptCount > 0 {
		totalScore := 0
		passed := 0
		for _, a := range attempts {
			score := 0
			if a.TotalScore != nil {
				score = *a.TotalScore
			}
			totalScore += score
			if quiz.MaxScore > 0 && float64(score)/float64(quiz.MaxScore)*100 >= float64(passingPercent) {
				passed++
			}
		}
		stats.AverageScore = float64(totalScore) / float64(stats.AttemptCount)
		stats.PassRate = float64(passed) / float64(stats.AttemptCount) * 100
	}

	correctCounts := make(map[uint]int, len(questions))
	for _, a := range attempts {
		for _, ans := range a.Answers {
			if ans.IsCorrect != nil && *ans.IsCorrect {
				correctCounts[ans.QuestionID]++
			}
		}
	}

	stats.QuestionStats = make([]QuestionStat, 0, len(questions))
	for _, q := range questions {
		qs := QuestionStat{
			QuestionID: q.ID,
			Order:      q.Order,
			Prompt:     q.Prompt,
		}
		if stats.AttemptCount > 0 {
			qs.CorrectRate = float64(correctCounts[q.ID]) / float64(stats.AttemptCount) * 100
		}
		stats.QuestionStats = append(stats.QuestionStats, qs)
	}

	return stats
}
