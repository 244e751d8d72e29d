package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrAccountDisabled      = errors.New("account disabled")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrApplicantNotFound    = errors.New("applicant not found")
	ErrApplicantProcessed   = errors.New("application already processed")
	ErrSectionNotFound      = errors.New("section not found")
	ErrSectionFull          = errors.New("section has reached its capacity")
	ErrClassNotFound        = errors.New("class not found")
	ErrScheduleConflict     = errors.New("schedule conflicts with an existing class slot")
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentNotEnrolled   = errors.New("student not enrolled in this class")
	ErrNotLinkedToStudent   = errors.New("parent is not linked to this student")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrQuizNotPublished     = errors.New("quiz not published")
	ErrQuizClosed           = errors.New("quiz closed, no new attempts accepted")
	ErrQuizHasAttempts      = errors.New("quiz already has attempts, questions are frozen")
	ErrDueDatePassed        = errors.New("quiz due date has passed")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrAttemptSubmitted     = errors.New("attempt already submitted")
	ErrMaxAttemptsReached   = errors.New("max attempts reached for this quiz")
	ErrTimeExpired          = errors.New("time limit expired for this attempt")
	ErrAnswerNotInQuiz      = errors.New("answer references a question that does not belong to this quiz")
	ErrOptionNotInQuestion  = errors.New("answer references an option that does not belong to this question")
	ErrDuplicateAnswer      = errors.New("submission contains more than one answer for the same question")
	ErrNotManuallyGradable  = errors.New("only short answer questions accept manual grading")
	ErrCorrectOptionMissing = errors.New("choice question must have exactly one correct option")
	ErrGradeEntryNotFound   = errors.New("grade entry not found")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrAssignmentClosed     = errors.New("assignment deadline has passed")
	ErrMaterialNotFound     = errors.New("material not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
