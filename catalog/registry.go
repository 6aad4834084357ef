package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlkata/internal/casefile"
)

// Sentinel errors for registry operations.
var (
	// ErrUnknownProblem indicates a name that is not registered.
	ErrUnknownProblem = errors.New("catalog: unknown problem")

	// ErrDuplicateProblem indicates a second registration under one name.
	ErrDuplicateProblem = errors.New("catalog: problem already registered")

	// ErrInvalidProblem indicates a Problem without a name or runner.
	ErrInvalidProblem = errors.New("catalog: problem needs a name and a runner")
)

// Case is one set of inputs plus expectation, as decoded from a case file.
type Case = casefile.Case

// Problem binds an exercise name to a runner that reads its inputs from a
// Case and returns a YAML-encodable result.
type Problem struct {
	Name    string
	Family  string // package that implements it
	Summary string
	Run     func(Case) (any, error)
}

// Registry maps problem names to runners. It is not safe for concurrent
// registration; lookups after setup are read-only.
type Registry struct {
	byName map[string]Problem
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Problem)}
}

// Register adds p.
//
// Errors:
//   - ErrInvalidProblem if p has no name or no runner.
//   - ErrDuplicateProblem if the name is taken.
func (r *Registry) Register(p Problem) error {
	if p.Name == "" || p.Run == nil {
		return fmt.Errorf("%w: %q", ErrInvalidProblem, p.Name)
	}
	if _, ok := r.byName[p.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProblem, p.Name)
	}
	r.byName[p.Name] = p

	return nil
}

// Lookup returns the problem registered under name.
func (r *Registry) Lookup(name string) (Problem, error) {
	p, ok := r.byName[name]
	if !ok {
		return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
	}

	return p, nil
}

// Names returns every registered name in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Problems returns every problem ordered by family, then name.
func (r *Registry) Problems() []Problem {
	out := make([]Problem, 0, len(r.byName))
	for _, p := range r.byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Default returns a registry holding every exercise the CLI exposes.
func Default() *Registry {
	r := NewRegistry()
	groups := [][]Problem{
		searchProblems(),
		sortingProblems(),
		treeProblems(),
		listProblems(),
		lookupProblems(),
		exprProblems(),
		stackProblems(),
		stringProblems(),
		gridProblems(),
	}
	for _, group := range groups {
		for _, p := range group {
			if err := r.Register(p); err != nil {
				panic(err) // static table
			}
		}
	}

	return r
}
