package model

import "github.com/limaJavier/cycle-timetabling/pkg/sat"

// Extract reads the raw schedule out of a solved model. Unsolved results yield an error matching ErrNoSchedule and no schedule
func Extract(model *ConstraintModel, result sat.Result) (Schedule, error) {
	switch result.Status {
	case sat.Feasible, sat.Optimal:
	case sat.Infeasible:
		return Schedule{}, &InfeasibleModelError{Variables: model.Model.Variables, Constraints: len(model.Model.Constraints)}
	default:
		return Schedule{}, &UnknownResultError{Status: result.Status}
	}

	if uint64(len(result.Assignment)) < model.Model.Variables {
		return Schedule{}, invariantError("extractor", "assignment holds %d values for %d variables", len(result.Assignment), model.Model.Variables)
	}

	spec := model.Spec
	grid := newSchedule(spec.CountGroups(), spec.LessonsPerDay)
	for group := range spec.CountGroups() {
		for _, day := range Days() {
			for slot := range spec.LessonsPerDay {
				for subject := range spec.CountSubjects() {
					if !result.Assignment.Value(model.Variable(day, group, slot, subject)) {
						continue
					}
					if current := grid[group][day][slot]; current != Window {
						return Schedule{}, invariantError("extractor", "group %d holds subjects %d and %d on %v slot %d", group, current-1, subject, day, slot)
					}
					grid[group][day][slot] = LessonOf(subject)
				}
			}
		}
	}

	return Schedule{grid: grid, capacity: spec.LessonsPerDay}, nil
}
