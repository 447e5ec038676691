package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesDeterministic(t *testing.T) {
	// Arrange
	scenarios := [][]uint64{
		{12, 1, 1, 1},
		{12, 2, 5, 7},
		{12, 3, 3, 3},
		{12, 10, 6, 12},
		{1, 4, 5, 45},
	}

	for _, scenario := range scenarios {
		var Days uint64 = scenario[0]
		var Groups uint64 = scenario[1]
		var Slots uint64 = scenario[2]
		var Subjects uint64 = scenario[3]

		// Act
		indexer := newIndexer(Days, Groups, Slots, Subjects)

		indices := make([]uint64, 0, Days*Groups*Slots*Subjects)

		for day := uint64(0); day < Days; day++ {
			for group := uint64(0); group < Groups; group++ {
				for slot := uint64(0); slot < Slots; slot++ {
					for subject := uint64(0); subject < Subjects; subject++ {
						indices = append(indices, indexer.Index(day, group, slot, subject))
					}
				}
			}
		}

		// Assert
		assert.Equal(t, uint64(len(indices)), indexer.Variables())
		for _, index := range indices {
			day, group, slot, subject := indexer.Attributes(index)
			assert.Equal(t, index, indexer.Index(day, group, slot, subject))
		}
	}
}

func TestIndexFormula(t *testing.T) {
	indexer := newIndexer(DaysInCycle, 2, 5, 7)

	assert.Equal(t, uint64(1), indexer.Index(0, 0, 0, 0))
	assert.Equal(t, uint64(1+3+7*(4+5*(1+2*11))), indexer.Index(11, 1, 4, 3))
	assert.Equal(t, indexer.Variables(), indexer.Index(11, 1, 4, 6))
}

func TestIndexAndAttributesNonDeterministic(t *testing.T) {
	for range 10 {
		// Arrange
		var Days uint64 = uint64(rand.Intn(12) + 1)
		var Groups uint64 = uint64(rand.Intn(20) + 1)
		var Slots uint64 = uint64(rand.Intn(10) + 1)
		var Subjects uint64 = uint64(rand.Intn(50) + 1)

		// Act
		indexer := newIndexer(Days, Groups, Slots, Subjects)

		// Assert
		for index := uint64(1); index <= indexer.Variables(); index++ {
			day, group, slot, subject := indexer.Attributes(index)
			assert.Less(t, day, Days)
			assert.Less(t, group, Groups)
			assert.Less(t, slot, Slots)
			assert.Less(t, subject, Subjects)
			assert.Equal(t, index, indexer.Index(day, group, slot, subject))
		}
	}
}

func TestIntegerConstraints(t *testing.T) {
	for range 10 {
		// Arrange
		var Days uint64 = uint64(rand.Intn(12) + 1)
		var Groups uint64 = uint64(rand.Intn(20) + 1)
		var Slots uint64 = uint64(rand.Intn(10) + 1)
		var Subjects uint64 = uint64(rand.Intn(50) + 1)

		// Act
		indexer := newIndexer(Days, Groups, Slots, Subjects)

		indices := make([]uint64, 0, Days*Groups*Slots*Subjects)

		for day := uint64(0); day < Days; day++ {
			for group := uint64(0); group < Groups; group++ {
				for slot := uint64(0); slot < Slots; slot++ {
					for subject := uint64(0); subject < Subjects; subject++ {
						indices = append(indices, indexer.Index(day, group, slot, subject))
					}
				}
			}
		}

		slices.Sort(indices)

		// Assert
		for i, index := range indices {
			if i == 0 {
				// First index should be 1
				assert.Equal(t, uint64(1), index)
				continue
			}

			// Each index should be one more than the previous index
			assert.Equal(t, indices[i-1]+1, index)
		}
	}
}

func TestWindowIndex(t *testing.T) {
	indexer := newIndexer(DaysInCycle, 2, 5, 7)

	assert.Equal(t, indexer.Variables()+1, indexer.Window(0, 0, 0))
	assert.Equal(t, indexer.Variables()+indexer.Windows(), indexer.Window(11, 1, 4))

	// Windows fill the range right after the lessons without gaps
	windows := make([]uint64, 0, indexer.Windows())
	for day := range uint64(DaysInCycle) {
		for group := range uint64(2) {
			for slot := range uint64(5) {
				windows = append(windows, indexer.Window(day, group, slot))
			}
		}
	}
	slices.Sort(windows)
	for i, window := range windows {
		assert.Equal(t, indexer.Variables()+uint64(i)+1, window)
	}
}
