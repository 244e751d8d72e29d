package service

import (
	"time"

	"schoolhub_backend/internal/model"
	"schoolhub_backend/internal/repository"
	"schoolhub_backend/internal/util"
)

type AttendanceService struct {
	AttendanceRepo *repository.AttendanceRepository
	ClassRepo      *repository.ClassRepository
	StudentRepo    *repository.StudentRepository
}

func NewAttendanceService(attendanceRepo *repository.AttendanceRepository, classRepo *repository.ClassRepository, studentRepo *repository.StudentRepository) *AttendanceService {
	return &AttendanceService{
		AttendanceRepo: attendanceRepo,
		ClassRepo:      classRepo,
		StudentRepo:    studentRepo,
	}
}

type AttendanceMark struct {
	StudentID uint                   `json:"studentId" binding:"required"`
	Status    model.AttendanceStatus `json:"status" binding:"required"`
	Remarks   string                 `json:"remarks"`
}

// RecordAttendance 批量记录一节课某天的点名结果。
// 同一 (课程, 学生, 日期) 重复记录时覆盖旧状态。
func (s *AttendanceService) RecordAttendance(teacherID, classID uint, date time.Time, marks []AttendanceMark) ([]model.AttendanceRecord, error) {
	class, err := s.ClassRepo.FindByID(classID)
	if err != nil {
		return nil, util.ErrClassNotFound
	}
	if class.TeacherID != teacherID {
		return nil, util.ErrPermissionDenied
	}

	day := date.Truncate(24 * time.Hour)
	records := make([]model.AttendanceRecord, 0, len(marks))
	for _, mark := range marks {
		student, err := s.StudentRepo.FindByID(mark.StudentID)
		if err != nil {
			return nil, util.ErrStudentNotFound
		}
		if student.SectionID == nil || *student.SectionID != class.SectionID {
			return nil, util.ErrStudentNotEnrolled
		}
		records = append(records, model.AttendanceRecord{
			ClassID:    classID,
			StudentID:  mark.StudentID,
			Date:       day,
			Status:     mark.Status,
			Remarks:    mark.Remarks,
			RecordedBy: teacherID,
		})
	}

	if err := s.AttendanceRepo.UpsertRecords(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *AttendanceService) ClassSheet(classID uint, date time.Time) ([]model.AttendanceRecord, error) {
	return s.AttendanceRepo.ListByClassAndDate(classID, date.Truncate(24*time.Hour))
}

// AttendanceSummary 出勤汇总，比例为百分数
type AttendanceSummary struct {
	Total       int     `json:"total"`
	Present     int     `json:"present"`
	Late        int     `json:"late"`
	Absent      int     `json:"absent"`
	Excused     int     `json:"excused"`
	PresentRate float64 `json:"presentRate"`
	AbsentRate  float64 `json:"absentRate"`
}

func (s *AttendanceService) StudentSummary(studentID uint, from, to time.Time) (*AttendanceSummary, error) {
	records, err := s.AttendanceRepo.ListByStudent(studentID, from, to)
	if err != nil {
		return nil, err
	}
	summary := SummarizeAttendance(records)
	return &summary, nil
}

func (s *AttendanceService) ClassSummary(classID uint, from, to time.Time) (*AttendanceSummary, error) {
	records, err := s.AttendanceRepo.ListByClass(classID, from, to)
	if err != nil {
		return nil, err
	}
	summary := SummarizeAttendance(records)
	return &summary, nil
}

// SummarizeAttendance 统计一组出勤记录。迟到计入出勤率，
// 请假不计入缺勤率。
func SummarizeAttendance(records []model.AttendanceRecord) AttendanceSummary {
	summary := AttendanceSummary{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case model.AttendancePresent:
			summary.Present++
		case model.AttendanceLate:
			summary.Late++
		case model.AttendanceAbsent:
			summary.Absent++
		case model.AttendanceExcused:
			summary.Excused++
		}
	}
	if summary.Total == 0 {
		return summary
	}
	summary.PresentRate = float64(summary.Present+summary.Late) / float64(summary.Total) * 100
	summary.AbsentRate = float64(summary.Absent) / float64(summary.Total) * 100
	return summary
}
