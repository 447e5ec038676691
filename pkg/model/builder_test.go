package model

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limaJavier/cycle-timetabling/pkg/sat"
)

func TestBuildModel(t *testing.T) {
	//** Arrange
	spec := validSpec()

	//** Act
	model, err := BuildModel(spec)

	//** Assert
	require.NoError(t, err)
	groups, subjects, slots := spec.CountGroups(), spec.CountSubjects(), spec.LessonsPerDay
	lessons := DaysInCycle * groups * slots * subjects
	assert.Equal(t, lessons+DaysInCycle*groups*slots, model.Model.Variables)
	require.Len(t, model.Model.Constraints, int(DaysInCycle*groups*slots+groups*subjects+groups))
	assert.Equal(t, 1, model.Wishes)
	assert.True(t, lo.EveryBy(model.Model.Constraints, func(constraint sat.Constraint) bool {
		return constraint.Relation == sat.Equal
	}))

	// Constraints come in order: exclusivity, quotas, window counts
	exclusivity := model.Model.Constraints[:DaysInCycle*groups*slots]
	quotas := model.Model.Constraints[DaysInCycle*groups*slots : DaysInCycle*groups*slots+groups*subjects]
	windows := model.Model.Constraints[DaysInCycle*groups*slots+groups*subjects:]

	t.Run("Slot exclusivity", func(t *testing.T) {
		covered := make(map[uint64]int)
		for _, constraint := range exclusivity {
			assert.Equal(t, uint64(1), constraint.Bound)
			require.Len(t, constraint.Variables, int(subjects)+1)

			// All the lesson variables of one constraint share day, group and slot, and the last one is their window
			day, group, slot, _ := model.indexer.Attributes(constraint.Variables[0])
			for _, variable := range constraint.Variables[:subjects] {
				d, g, l, _ := model.indexer.Attributes(variable)
				assert.Equal(t, [3]uint64{day, group, slot}, [3]uint64{d, g, l})
			}
			assert.Equal(t, model.Window(Day(day), group, slot), constraint.Variables[subjects])
			for _, variable := range constraint.Variables {
				covered[variable]++
			}
		}
		// Every variable belongs to exactly one exclusivity constraint
		assert.Len(t, covered, int(model.Model.Variables))
		for _, count := range covered {
			assert.Equal(t, 1, count)
		}
	})

	t.Run("Quota equality", func(t *testing.T) {
		for _, constraint := range quotas {
			require.Len(t, constraint.Variables, int(DaysInCycle*slots))
			_, group, _, subject := model.indexer.Attributes(constraint.Variables[0])
			for _, variable := range constraint.Variables {
				_, g, _, s := model.indexer.Attributes(variable)
				assert.Equal(t, [2]uint64{group, subject}, [2]uint64{g, s})
			}
			assert.Equal(t, spec.Groups[group].Quota[subject], constraint.Bound)
		}
	})

	t.Run("Window count", func(t *testing.T) {
		for group, constraint := range windows {
			require.Len(t, constraint.Variables, int(DaysInCycle*slots))
			for _, variable := range constraint.Variables {
				assert.Greater(t, variable, lessons)
			}
			assert.Equal(t, DaysInCycle*slots-lo.Sum(spec.Groups[group].Quota), constraint.Bound)
		}
	})

	t.Run("Objective", func(t *testing.T) {
		assert.Equal(t, []uint64{model.Variable(FridayOdd, 1, 2, 1)}, model.Model.Objective)
	})
}

func TestBuildModelOverCapacity(t *testing.T) {
	spec := validSpec()
	// 37 lessons for 36 slots, no single subject over the slot count
	spec.Groups[0].Quota = []uint64{19, 18}

	model, err := BuildModel(spec)

	require.NoError(t, err)
	contradictions := lo.Filter(model.Model.Constraints, func(constraint sat.Constraint, _ int) bool {
		return len(constraint.Variables) == 0
	})
	assert.Len(t, contradictions, 1)
	assert.False(t, model.Model.Satisfied(make(sat.Assignment, model.Model.Variables)))
}

func TestBuildModelWishes(t *testing.T) {
	spec := validSpec()
	spec.Wishes = []Wish{
		{Subject: 0, Group: 0, Day: MondayEven, Slot: 0},
		{Subject: 0, Group: 0, Day: MondayEven, Slot: 0}, // Duplicate
		{Subject: 0, Group: 1, Day: MondayEven, Slot: 0}, // Group 1 never takes subject 0
	}

	model, err := BuildModel(spec)

	require.NoError(t, err)
	assert.Equal(t, 2, model.Wishes)
	assert.Equal(t, []uint64{model.Variable(MondayEven, 0, 0, 0)}, model.Model.Objective)

	spec.Wishes = nil
	model, err = BuildModel(spec)

	require.NoError(t, err)
	assert.Zero(t, model.Wishes)
	assert.Empty(t, model.Model.Objective)
}

func TestBuildModelInvalidSpec(t *testing.T) {
	spec := validSpec()
	spec.Groups[0].Quota = nil

	model, err := BuildModel(spec)

	var configurationError *ConfigurationError
	assert.ErrorAs(t, err, &configurationError)
	assert.Nil(t, model)
}
