package service

import (
	"sort"

	"schoolhub_backend/internal/model"
)

// TimetableEntry 课表条目，时间以自零点起的分钟数表示
type TimetableEntry struct {
	ClassID  uint   `json:"classId"`
	Subject  string `json:"subject"`
	Room     string `json:"room"`
	Weekday  int    `json:"weekday"`
	StartMin int    `json:"startMin"`
	EndMin   int    `json:"endMin"`
}

// WeeklyTimetable 按星期几（1=周一..7=周日)分组、组内按开始时间排序
type WeeklyTimetable map[int][]TimetableEntry

// slotsOverlap 判断两个时段是否在同一天且时间重叠。
// 共享边界（一节课的结束等于下一节的开始）不算冲突。
func slotsOverlap(a, b model.ScheduleSlot) bool {
	if a.Weekday != b.Weekday {
		return false
	}
	return a.StartMin < b.EndMin && b.StartMin < a.EndMin
}

// FindScheduleConflict 在已有时段中查找与候选时段冲突的第一条，
// 无冲突时返回 nil。
func FindScheduleConflict(existing []model.ScheduleSlot, candidates []model.ScheduleSlot) *model.ScheduleSlot {
	for _, c := range candidates {
		for i := range existing {
			if existing[i].ClassID == c.ClassID {
				continue
			}
			if slotsOverlap(existing[i], c) {
				return &existing[i]
			}
		}
	}
	return nil
}

// BuildWeeklyTimetable 由一个班级组的全部课程拼出周课表
func BuildWeeklyTimetable(classes []model.Class) WeeklyTimetable {
	table := make(WeeklyTimetable)
	for _, class := range classes {
		for _, slot := range class.Slots {
			table[slot.Weekday] = append(table[slot.Weekday], TimetableEntry{
				ClassID:  class.ID,
				Subject:  class.Subject,
				Room:     class.Room,
				Weekday:  slot.Weekday,
				StartMin: slot.StartMin,
				EndMin:   slot.EndMin,
			})
		}
	}
	for day := range table {
		entries := table[day]
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].StartMin < entries[j].StartMin
		})
		table[day] = entries
	}
	return table
}
