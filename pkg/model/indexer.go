package model

// indexer interface is design to give a unique index to a combination of decision variable's attributes and vice versa
type indexer interface {
	// Returns a unique index to a combination of decision variable's attributes
	Index(day, group, slot, subject uint64) uint64
	// Returns a combination of decision variable's attributes from a unique index
	Attributes(index uint64) (day, group, slot, subject uint64)
	// Returns the size of the index range, i.e. the largest index
	Variables() uint64
	// Returns the index of the variable that is true when (day, group, slot) holds no lesson; windows are numbered after every lesson
	Window(day, group, slot uint64) uint64
	// Returns the number of window variables
	Windows() uint64
}

func newIndexer(days, groups, slots, subjects uint64) indexer {
	return &indexerImplementation{
		days:     days,
		groups:   groups,
		slots:    slots,
		subjects: subjects,
	}
}
