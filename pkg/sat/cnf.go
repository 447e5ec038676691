package sat

import "github.com/samber/lo"

// cnfEncoder turns cardinality constraints into clauses. Auxiliary variables are numbered after the model's own variables
type cnfEncoder struct {
	next    uint64
	clauses [][]int64
}

// EncodeCNF translates the model's constraints into a SAT instance. The first model.Variables variables of the instance are the
// model's variables, so a SATSolution projects back through SATSolution.Assignment. The objective is not encoded
func EncodeCNF(model *Model) SAT {
	encoder := &cnfEncoder{
		next:    model.Variables,
		clauses: make([][]int64, 0, len(model.Constraints)),
	}

	for _, constraint := range model.Constraints {
		literals := lo.Map(constraint.Variables, func(variable uint64, _ int) int64 { return int64(variable) })
		switch constraint.Relation {
		case LessOrEqual:
			encoder.atMost(literals, constraint.Bound)
		case Equal:
			encoder.atMost(literals, constraint.Bound)
			encoder.atLeast(literals, constraint.Bound)
		}
	}

	return SAT{
		Variables: encoder.next,
		Clauses:   encoder.clauses,
	}
}

func (encoder *cnfEncoder) fresh() int64 {
	encoder.next++
	return int64(encoder.next)
}

func (encoder *cnfEncoder) add(literals ...int64) {
	encoder.clauses = append(encoder.clauses, literals)
}

// contradiction adds x and -x for a fresh x
func (encoder *cnfEncoder) contradiction() {
	variable := encoder.fresh()
	encoder.add(variable)
	encoder.add(-variable)
}

// At least k literals are true iff at most n-k of their negations are true
func (encoder *cnfEncoder) atLeast(literals []int64, k uint64) {
	n := uint64(len(literals))
	if k == 0 {
		return
	} else if k > n {
		encoder.contradiction()
		return
	}
	negated := lo.Map(literals, func(literal int64, _ int) int64 { return -literal })
	encoder.atMost(negated, n-k)
}

// Sequential counter (Sinz, 2005): s(i, j) holds when at least j of the first i+1 literals are true
func (encoder *cnfEncoder) atMost(literals []int64, k uint64) {
	n := uint64(len(literals))
	if k >= n {
		return
	} else if k == 0 {
		for _, literal := range literals {
			encoder.add(-literal)
		}
		return
	}

	//** Allocate counter registers for the first n-1 literals
	registers := make([][]int64, n-1)
	for i := range registers {
		registers[i] = make([]int64, k)
		for j := range registers[i] {
			registers[i][j] = encoder.fresh()
		}
	}

	//** First literal
	encoder.add(-literals[0], registers[0][0])
	for j := uint64(1); j < k; j++ {
		encoder.add(-registers[0][j])
	}

	//** Middle literals
	for i := uint64(1); i < n-1; i++ {
		encoder.add(-literals[i], registers[i][0])
		encoder.add(-registers[i-1][0], registers[i][0])
		for j := uint64(1); j < k; j++ {
			encoder.add(-literals[i], -registers[i-1][j-1], registers[i][j])
			encoder.add(-registers[i-1][j], registers[i][j])
		}
		encoder.add(-literals[i], -registers[i-1][k-1])
	}

	//** Last literal
	encoder.add(-literals[n-1], -registers[n-2][k-1])
}
