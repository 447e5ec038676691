package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Window is the lesson code of an empty slot
const Window uint64 = 0

// LessonOf is the lesson code stored in a schedule for a subject index
func LessonOf(subject uint64) uint64 {
	return subject + 1
}

// SubjectOf reverses LessonOf; windows have no subject
func SubjectOf(lesson uint64) (uint64, bool) {
	if lesson == Window {
		return 0, false
	}
	return lesson - 1, true
}

// Schedule holds the lesson codes of every group, indexed [group][day][slot]. It is never modified once built
type Schedule struct {
	grid     [][][]uint64
	capacity uint64
}

// ScheduleFromGrid copies an externally produced grid, e.g. a stored timetable to be verified. Every group must have DaysInCycle days
// of exactly capacity slots
func ScheduleFromGrid(grid [][][]uint64, capacity uint64) (Schedule, error) {
	for group, days := range grid {
		if len(days) != DaysInCycle {
			return Schedule{}, fmt.Errorf("group %d has %d days, expected %d", group, len(days), DaysInCycle)
		}
		for day, slots := range days {
			if uint64(len(slots)) != capacity {
				return Schedule{}, fmt.Errorf("group %d has %d slots on %v, expected %d", group, len(slots), Day(day), capacity)
			}
		}
	}
	return Schedule{grid: copyGrid(grid), capacity: capacity}, nil
}

func newSchedule(groups, capacity uint64) [][][]uint64 {
	grid := make([][][]uint64, groups)
	for group := range grid {
		grid[group] = make([][]uint64, DaysInCycle)
		for day := range grid[group] {
			grid[group][day] = make([]uint64, capacity)
		}
	}
	return grid
}

func copyGrid(grid [][][]uint64) [][][]uint64 {
	return lo.Map(grid, func(days [][]uint64, _ int) [][]uint64 {
		return lo.Map(days, func(slots []uint64, _ int) []uint64 {
			return append([]uint64(nil), slots...)
		})
	})
}

func (schedule Schedule) Groups() uint64 {
	return uint64(len(schedule.grid))
}

func (schedule Schedule) Capacity() uint64 {
	return schedule.capacity
}

// At returns the lesson code of a slot
func (schedule Schedule) At(group uint64, day Day, slot uint64) uint64 {
	return schedule.grid[group][day][slot]
}

// Day returns a copy of one day of a group
func (schedule Schedule) Day(group uint64, day Day) []uint64 {
	return append([]uint64(nil), schedule.grid[group][day]...)
}

// Grid returns a deep copy of the whole schedule
func (schedule Schedule) Grid() [][][]uint64 {
	return copyGrid(schedule.grid)
}

// Lessons counts the non-window slots of a day
func (schedule Schedule) Lessons(group uint64, day Day) uint64 {
	return uint64(lo.CountBy(schedule.grid[group][day], func(lesson uint64) bool { return lesson != Window }))
}

// Count is the number of lessons of a subject the group takes over the cycle
func (schedule Schedule) Count(group, subject uint64) uint64 {
	return lo.SumBy(schedule.grid[group], func(slots []uint64) uint64 {
		return uint64(lo.Count(slots, LessonOf(subject)))
	})
}
