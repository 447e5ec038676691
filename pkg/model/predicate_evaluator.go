package model

type predicateEvaluator interface {
	// Returns the number of lessons of the subject the group takes over the cycle
	Quota(group, subject uint64) uint64

	// Checks whether the group takes the subject at all
	Taught(group, subject uint64) bool

	// Checks whether some wish asks for the subject to be taught to the group at the given day and slot
	Wished(day, group, slot, subject uint64) bool

	// Returns the number of distinct wishes
	Wishes() int
}
