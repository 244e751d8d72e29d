package controller

import (
	"errors"
	"net/http"
	"strconv"

	"schoolhub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 业务错误到 HTTP 状态码的映射，未列出的一律按 500 处理
var errorStatus = map[error]int{
	util.ErrUserNotFound:         http.StatusNotFound,
	util.ErrEmailRegistered:      http.StatusConflict,
	util.ErrInvalidCredentials:   http.StatusUnauthorized,
	util.ErrAccountDisabled:      http.StatusForbidden,
	util.ErrPermissionDenied:     http.StatusForbidden,
	util.ErrApplicantNotFound:    http.StatusNotFound,
	util.ErrApplicantProcessed:   http.StatusConflict,
	util.ErrSectionNotFound:      http.StatusNotFound,
	util.ErrSectionFull:          http.StatusConflict,
	util.ErrClassNotFound:        http.StatusNotFound,
	util.ErrScheduleConflict:     http.StatusConflict,
	util.ErrStudentNotFound:      http.StatusNotFound,
	util.ErrStudentNotEnrolled:   http.StatusBadRequest,
	util.ErrNotLinkedToStudent:   http.StatusForbidden,
	util.ErrQuizNotFound:         http.StatusNotFound,
	util.ErrQuizNotPublished:     http.StatusConflict,
	util.ErrQuizClosed:           http.StatusConflict,
	util.ErrQuizHasAttempts:      http.StatusConflict,
	util.ErrDueDatePassed:        http.StatusConflict,
	util.ErrAttemptNotFound:      http.StatusNotFound,
	util.ErrAttemptSubmitted:     http.StatusConflict,
	util.ErrMaxAttemptsReached:   http.StatusConflict,
	util.ErrTimeExpired:          http.StatusConflict,
	util.ErrAnswerNotInQuiz:      http.StatusBadRequest,
	util.ErrOptionNotInQuestion:  http.StatusBadRequest,
	util.ErrDuplicateAnswer:      http.StatusBadRequest,
	util.ErrNotManuallyGradable:  http.StatusBadRequest,
	util.ErrCorrectOptionMissing: http.StatusUnprocessableEntity,
	util.ErrGradeEntryNotFound:   http.StatusNotFound,
	util.ErrAssignmentNotFound:   http.StatusNotFound,
	util.ErrAssignmentClosed:     http.StatusConflict,
	util.ErrMaterialNotFound:     http.StatusNotFound,
	util.ErrAnnouncementNotFound: http.StatusNotFound,
}

func respondError(ctx *gin.Context, err error) {
	for sentinel, status := range errorStatus {
		if errors.Is(err, sentinel) {
			util.Error(ctx, status, sentinel.Error())
			return
		}
	}
	util.LogInternalError(ctx, err)
}

func pathID(ctx *gin.Context, name string) uint {
	return util.MustParseUint(ctx.Param(name))
}

func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
