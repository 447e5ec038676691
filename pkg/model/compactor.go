package model

import "github.com/samber/lo"

// CompactDay moves the windows of a day after its lessons, keeping lessons in their original order. The result has the same length
// as the input; a day holding more slots than capacity is rejected instead of being cut
func CompactDay(day []uint64, capacity uint64) ([]uint64, error) {
	if uint64(len(day)) > capacity {
		return nil, invariantError("compactor", "day holds %d slots, capacity is %d", len(day), capacity)
	}

	compacted := lo.Filter(day, func(lesson uint64, _ int) bool { return lesson != Window })
	for len(compacted) < len(day) {
		compacted = append(compacted, Window)
	}
	return compacted, nil
}

// Compact applies CompactDay to every day of every group and returns a new schedule
func Compact(schedule Schedule) (Schedule, error) {
	grid := make([][][]uint64, len(schedule.grid))
	for group, days := range schedule.grid {
		grid[group] = make([][]uint64, len(days))
		for day, slots := range days {
			compacted, err := CompactDay(slots, schedule.capacity)
			if err != nil {
				return Schedule{}, err
			}
			grid[group][day] = compacted
		}
	}
	return Schedule{grid: grid, capacity: schedule.capacity}, nil
}
