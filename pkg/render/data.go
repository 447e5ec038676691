package render

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/cycle-timetabling/pkg/model"
)

// DaySchedule holds the display names of one day's lessons
type DaySchedule struct {
	Lessons []string
}

type GroupSchedule struct {
	Name string
	Days []DaySchedule // One per day of the cycle
}

// ScheduleData is a schedule resolved into names, ready to be shown or exported
type ScheduleData struct {
	Groups        []GroupSchedule
	LessonsPerDay uint64
}

func NewDaySchedule(lessons []string, capacity uint64) (DaySchedule, error) {
	if uint64(len(lessons)) > capacity {
		return DaySchedule{}, fmt.Errorf("day holds %d lessons, at most %d allowed", len(lessons), capacity)
	}
	return DaySchedule{Lessons: append([]string(nil), lessons...)}, nil
}

func NewGroupSchedule(name string, days []DaySchedule) (GroupSchedule, error) {
	if strings.TrimSpace(name) == "" {
		return GroupSchedule{}, fmt.Errorf("group name must not be empty")
	} else if len(days) != model.DaysInCycle {
		return GroupSchedule{}, fmt.Errorf("group %q has %d days, expected %d", name, len(days), model.DaysInCycle)
	}
	return GroupSchedule{Name: name, Days: days}, nil
}

// NewScheduleData maps lesson codes to subject names; windows are shown as placeholder
func NewScheduleData(schedule model.Schedule, groupNames, subjectNames []string, placeholder string) (ScheduleData, error) {
	if uint64(len(groupNames)) != schedule.Groups() {
		return ScheduleData{}, fmt.Errorf("%d group names for %d groups", len(groupNames), schedule.Groups())
	}

	data := ScheduleData{
		Groups:        make([]GroupSchedule, 0, len(groupNames)),
		LessonsPerDay: schedule.Capacity(),
	}
	for group, name := range groupNames {
		days := make([]DaySchedule, 0, model.DaysInCycle)
		for _, day := range model.Days() {
			lessons := make([]string, 0, schedule.Capacity())
			for _, lesson := range schedule.Day(uint64(group), day) {
				subject, ok := model.SubjectOf(lesson)
				if !ok {
					lessons = append(lessons, placeholder)
					continue
				} else if subject >= uint64(len(subjectNames)) {
					return ScheduleData{}, fmt.Errorf("lesson code %d of group %q has no subject name", lesson, name)
				}
				lessons = append(lessons, subjectNames[subject])
			}

			daySchedule, err := NewDaySchedule(lessons, schedule.Capacity())
			if err != nil {
				return ScheduleData{}, fmt.Errorf("group %q on %v: %w", name, day, err)
			}
			days = append(days, daySchedule)
		}

		groupSchedule, err := NewGroupSchedule(name, days)
		if err != nil {
			return ScheduleData{}, err
		}
		data.Groups = append(data.Groups, groupSchedule)
	}
	return data, nil
}

// Validate applies the NewGroupSchedule and NewDaySchedule checks to a value that may have been assembled by hand
func (data ScheduleData) Validate() error {
	for _, group := range data.Groups {
		if _, err := NewGroupSchedule(group.Name, group.Days); err != nil {
			return err
		}
		for day, daySchedule := range group.Days {
			if _, err := NewDaySchedule(daySchedule.Lessons, data.LessonsPerDay); err != nil {
				return fmt.Errorf("group %q on %v: %w", group.Name, model.Day(day), err)
			}
		}
	}
	return nil
}

// GroupNames lists the names of the groups in display order
func (data ScheduleData) GroupNames() []string {
	return lo.Map(data.Groups, func(group GroupSchedule, _ int) string { return group.Name })
}

// lesson returns the lesson of a group at (day, slot), or "" past the end of a shorter day
func (data ScheduleData) lesson(group int, day model.Day, slot uint64) string {
	lessons := data.Groups[group].Days[day].Lessons
	if slot >= uint64(len(lessons)) {
		return ""
	}
	return lessons[slot]
}
