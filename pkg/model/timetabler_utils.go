package model

// verify re-checks a schedule against the spec it was built for:
//   - the schedule has one row per group and capacity slots per day
//   - every lesson code is a window or a known subject
//   - every (group, subject) pair meets its quota exactly
func verify(schedule Schedule, spec TimetableSpec) bool {
	if spec.Validate() != nil || schedule.Groups() != spec.CountGroups() || schedule.Capacity() != spec.LessonsPerDay {
		return false
	}

	for group := range spec.CountGroups() {
		//** Count lessons per subject
		derivedLessons := make([]uint64, spec.CountSubjects())
		for _, day := range Days() {
			slots := schedule.grid[group][day]
			if uint64(len(slots)) != spec.LessonsPerDay {
				return false
			}

			for _, lesson := range slots {
				subject, ok := SubjectOf(lesson)
				if !ok {
					continue
				} else if subject >= spec.CountSubjects() {
					return false
				}
				derivedLessons[subject]++
			}
		}

		// Check whether the number of lessons taken for each subject is equal to the quota
		for subject, lessons := range derivedLessons {
			if lessons != spec.Groups[group].Quota[subject] {
				return false
			}
		}
	}
	return true
}

// honouredWishes counts the distinct wishes a schedule places exactly where they were asked for
func honouredWishes(schedule Schedule, spec TimetableSpec) uint64 {
	seen := make(map[Wish]bool, len(spec.Wishes))
	var honoured uint64
	for _, wish := range spec.Wishes {
		if seen[wish] {
			continue
		}
		seen[wish] = true
		if schedule.At(wish.Group, wish.Day, wish.Slot) == LessonOf(wish.Subject) {
			honoured++
		}
	}
	return honoured
}
