package model

import "github.com/limaJavier/cycle-timetabling/pkg/sat"

// ConstraintModel is a timetable spec compiled into a boolean model, along with what is needed to read an assignment back
type ConstraintModel struct {
	Model  *sat.Model
	Spec   TimetableSpec
	Wishes int // Distinct wishes, an upper bound of the objective

	indexer indexer
}

// BuildModel compiles a spec into one boolean variable per (day, group, slot, subject), plus one window variable per (day, group, slot).
// It never returns a model for an invalid spec
func BuildModel(spec TimetableSpec) (*ConstraintModel, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	//** Initialize dependencies
	evaluator := newPredicateEvaluator(spec)
	indexer := newIndexer(DaysInCycle, spec.CountGroups(), spec.LessonsPerDay, spec.CountSubjects())

	//** Build model
	model := sat.NewModel(indexer.Variables() + indexer.Windows())
	generateConstraints(constraintState{
		evaluator: evaluator,
		indexer:   indexer,
		days:      DaysInCycle,
		groups:    spec.CountGroups(),
		slots:     spec.LessonsPerDay,
		subjects:  spec.CountSubjects(),
	}, model)

	return &ConstraintModel{
		Model:   model,
		Spec:    spec,
		Wishes:  evaluator.Wishes(),
		indexer: indexer,
	}, nil
}

// Variable returns the model variable standing for subject taught to group at (day, slot)
func (model *ConstraintModel) Variable(day Day, group, slot, subject uint64) uint64 {
	return model.indexer.Index(uint64(day), group, slot, subject)
}

// Window returns the model variable that is true when group has no lesson at (day, slot)
func (model *ConstraintModel) Window(day Day, group, slot uint64) uint64 {
	return model.indexer.Window(uint64(day), group, slot)
}
