package day

import (
	"errors"
	"fmt"
	"sort"
)

// Registry errors
var (
	ErrNotFound   = errors.New("day not found")
	ErrNilSolver  = errors.New("solver cannot be nil")
	ErrInvalidDay = errors.New("day must be a positive integer")
)

// Provider defines read-only access to the registered solvers.
type Provider interface {
	// List returns all solvers sorted ascending by day.
	List() []Solver

	// Days returns the registered day numbers in ascending order.
	Days() []int

	// Get returns the solver for a day.
	// Returns ErrNotFound if the day is not registered.
	Get(day int) (Solver, error)
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)

// Registry holds the solvers of a run sorted by day number.
// Duplicate day numbers are kept; Get returns the first one registered.
type Registry struct {
	solvers []Solver
}

// NewRegistry sorts solvers by day and returns the registry.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	sorted := make([]Solver, 0, len(solvers))
	for i, s := range solvers {
		if s == nil {
			return nil, fmt.Errorf("solver %d: %w", i, ErrNilSolver)
		}
		if s.Day() <= 0 {
			return nil, fmt.Errorf("solver %d: %w: %d", i, ErrInvalidDay, s.Day())
		}
		sorted = append(sorted, s)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Day() < sorted[j].Day()
	})

	return &Registry{solvers: sorted}, nil
}

// MustRegistry is NewRegistry for generated code; it panics on error.
func MustRegistry(solvers ...Solver) *Registry {
	r, err := NewRegistry(solvers...)
	if err != nil {
		panic(err)
	}
	return r
}

// List returns all solvers
func (r *Registry) List() []Solver {
	out := make([]Solver, len(r.solvers))
	copy(out, r.solvers)
	return out
}

// Days returns the registered day numbers
func (r *Registry) Days() []int {
	days := make([]int, len(r.solvers))
	for i, s := range r.solvers {
		days[i] = s.Day()
	}
	return days
}

// Get returns the solver for day
func (r *Registry) Get(day int) (Solver, error) {
	i := sort.Search(len(r.solvers), func(i int) bool {
		return r.solvers[i].Day() >= day
	})
	if i < len(r.solvers) && r.solvers[i].Day() == day {
		return r.solvers[i], nil
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, day)
}

// Len returns the number of registered solvers.
func (r *Registry) Len() int {
	return len(r.solvers)
}
