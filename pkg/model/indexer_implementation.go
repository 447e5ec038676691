package model

// Subjects vary fastest, then slots, groups and days, so the variables of one (day, group, slot) are contiguous
type indexerImplementation struct {
	days     uint64
	groups   uint64
	slots    uint64
	subjects uint64
}

func (indexer *indexerImplementation) Index(day, group, slot, subject uint64) uint64 {
	return subject + indexer.subjects*slot + indexer.subjects*indexer.slots*group + indexer.subjects*indexer.slots*indexer.groups*day + 1
}

func (indexer *indexerImplementation) Attributes(index uint64) (day, group, slot, subject uint64) {
	index = index - 1
	subject = index % indexer.subjects
	index = index / indexer.subjects

	slot = index % indexer.slots
	index = index / indexer.slots

	group = index % indexer.groups
	index = index / indexer.groups

	day = index % indexer.days

	return day, group, slot, subject
}

func (indexer *indexerImplementation) Variables() uint64 {
	return indexer.days * indexer.groups * indexer.slots * indexer.subjects
}

func (indexer *indexerImplementation) Window(day, group, slot uint64) uint64 {
	return indexer.Variables() + slot + indexer.slots*group + indexer.slots*indexer.groups*day + 1
}

func (indexer *indexerImplementation) Windows() uint64 {
	return indexer.days * indexer.groups * indexer.slots
}
