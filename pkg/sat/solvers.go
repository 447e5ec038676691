package sat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const (
	BackendGophersat     = "gophersat"
	BackendGini          = "gini"
	BackendKissat        = "kissat"
	BackendCadical       = "cadical"
	BackendCryptominisat = "cryptominisat"
	BackendMinisat       = "minisat"
)

var engines = map[string]func(executable string) SATSolver{
	BackendGini:          func(string) SATSolver { return NewGiniSolver() },
	BackendKissat:        NewKissatSolver,
	BackendCadical:       NewCadicalSolver,
	BackendCryptominisat: NewCryptominisatSolver,
	BackendMinisat:       NewMinisatSolver,
}

// NewSolver resolves a backend by name. External backends run the given executable, falling back to the backend name (looked up in PATH)
func NewSolver(backend, executable string) (Solver, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	if backend == BackendGophersat {
		return NewGophersatSolver(), nil
	}

	engine, ok := engines[backend]
	if !ok {
		return nil, fmt.Errorf("unknown solver backend %q, expected one of %v", backend, Backends())
	}
	if executable == "" {
		executable = backend
	}
	return NewCNFSolver(engine(executable)), nil
}

// Backends lists the accepted backend names in lexical order
func Backends() []string {
	names := append(lo.Keys(engines), BackendGophersat)
	sort.Strings(names)
	return names
}
