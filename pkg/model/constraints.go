package model

import "github.com/limaJavier/cycle-timetabling/pkg/sat"

type constraintState struct {
	evaluator predicateEvaluator
	indexer   indexer

	days,
	groups,
	slots,
	subjects uint64
}

// generateConstraints walks the variable space once, day-major like the indexer, and fills the model with:
//   - slot exclusivity: each (day, group, slot) holds exactly one subject or its window
//   - quota equality: exactly Quota(group, subject) lessons per (group, subject) over the cycle
//   - window count: a group leaves exactly days*slots - sum_s Quota(group, s) windows, which no group can do with a negative count
//   - the wish objective: every wished variable counts one
func generateConstraints(state constraintState, model *sat.Model) {
	quotaVariables := make([][]uint64, state.groups*state.subjects)
	for i := range quotaVariables {
		quotaVariables[i] = make([]uint64, 0, state.days*state.slots)
	}
	windowVariables := make([][]uint64, state.groups)
	for i := range windowVariables {
		windowVariables[i] = make([]uint64, 0, state.days*state.slots)
	}
	wished := make([]uint64, 0, state.evaluator.Wishes())

	for day := range state.days {
		for group := range state.groups {
			for slot := range state.slots {
				exclusive := make([]uint64, 0, state.subjects+1)
				for subject := range state.subjects {
					variable := state.indexer.Index(day, group, slot, subject)
					exclusive = append(exclusive, variable)
					quotaVariables[group*state.subjects+subject] = append(quotaVariables[group*state.subjects+subject], variable)

					// A wish on a subject the group never takes cannot be honoured
					if state.evaluator.Taught(group, subject) && state.evaluator.Wished(day, group, slot, subject) {
						wished = append(wished, variable)
					}
				}
				window := state.indexer.Window(day, group, slot)
				exclusive = append(exclusive, window)
				windowVariables[group] = append(windowVariables[group], window)

				// Sum_s x(d, g, l, s) + w(d, g, l) = 1
				model.AddEquality(exclusive, 1)
			}
		}
	}

	// Sum_{d, l} x(d, g, l, s) = Quota(g, s)
	for group := range state.groups {
		for subject := range state.subjects {
			model.AddEquality(quotaVariables[group*state.subjects+subject], state.evaluator.Quota(group, subject))
		}
	}

	// Sum_{d, l} w(d, g, l) = days*slots - Sum_s Quota(g, s)
	capacity := state.days * state.slots
	for group := range state.groups {
		var lessons uint64
		for subject := range state.subjects {
			lessons += state.evaluator.Quota(group, subject)
		}
		if lessons > capacity {
			model.AddContradiction()
			continue
		}
		model.AddEquality(windowVariables[group], capacity-lessons)
	}

	if len(wished) > 0 {
		model.Maximize(wished)
	}
}
