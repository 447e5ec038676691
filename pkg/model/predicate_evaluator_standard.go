package model

type predicateEvaluatorStandard struct {
	spec   TimetableSpec
	wishes map[[4]uint64]bool // Keyed by (day, group, slot, subject), duplicates collapse
}

func newPredicateEvaluator(spec TimetableSpec) predicateEvaluator {
	evaluator := predicateEvaluatorStandard{
		spec:   spec,
		wishes: make(map[[4]uint64]bool, len(spec.Wishes)),
	}

	for _, wish := range spec.Wishes {
		evaluator.wishes[[4]uint64{uint64(wish.Day), wish.Group, wish.Slot, wish.Subject}] = true
	}

	return &evaluator
}

func (evaluator *predicateEvaluatorStandard) Quota(group, subject uint64) uint64 {
	return evaluator.spec.Groups[group].Quota[subject]
}

func (evaluator *predicateEvaluatorStandard) Taught(group, subject uint64) bool {
	return evaluator.Quota(group, subject) > 0
}

func (evaluator *predicateEvaluatorStandard) Wished(day, group, slot, subject uint64) bool {
	return evaluator.wishes[[4]uint64{day, group, slot, subject}]
}

func (evaluator *predicateEvaluatorStandard) Wishes() int {
	return len(evaluator.wishes)
}
