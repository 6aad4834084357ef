// Package sorting defines the algorithm selector, functional options and
// sentinel errors shared by the sorting routines.
package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for sorting operations.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unrecognised name.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrNegativeInput is returned by Radix for slices containing negatives.
	ErrNegativeInput = errors.New("sorting: radix sort requires non-negative values")

	// ErrInvalidK is returned when k falls outside [1, len(a)].
	ErrInvalidK = errors.New("sorting: k out of range")
)

// Algorithm selects the routine used by Sort.
type Algorithm int

const (
	// QuickSort is the default: in place, not stable, O(n log n) expected.
	QuickSort Algorithm = iota
	// MergeSort is stable, O(n log n) worst case, O(n) extra memory.
	MergeSort
	// HeapSort is in place, not stable, O(n log n) worst case.
	HeapSort
	// ShellSort uses the Knuth gap sequence 1, 4, 13, 40, ….
	ShellSort
	// InsertionSort is stable and O(n²); fast on nearly sorted input.
	InsertionSort
	// SelectionSort is O(n²) with at most n-1 swaps.
	SelectionSort
	// BubbleSort is stable and O(n²), stopping early on a pass without swaps.
	BubbleSort

	numAlgorithms
)

var algorithmNames = [...]string{
	QuickSort:     "quick",
	MergeSort:     "merge",
	HeapSort:      "heap",
	ShellSort:     "shell",
	InsertionSort: "insertion",
	SelectionSort: "selection",
	BubbleSort:    "bubble",
}

// String returns the short lowercase name of the algorithm.
func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Algorithms lists every selectable algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, numAlgorithms)
	for a := Algorithm(0); a < numAlgorithms; a++ {
		out = append(out, a)
	}

	return out
}

// ParseAlgorithm maps a short name ("quick", "merge", …) to an Algorithm.
// Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Option configures Sort via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Sort runs.
type Option func(*Options)

// Options holds the parameters of a Sort call.
type Options struct {
	// Algorithm picks the routine; QuickSort by default.
	Algorithm Algorithm

	// Descending reverses the order after sorting ascending.
	Descending bool

	err error
}

// DefaultOptions returns ascending QuickSort.
func DefaultOptions() Options {
	return Options{Algorithm: QuickSort}
}

// WithAlgorithm selects the sorting routine.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < 0 || a >= numAlgorithms {
			o.err = fmt.Errorf("%w: algorithm %d", ErrOptionViolation, int(a))

			return
		}
		o.Algorithm = a
	}
}

// WithDescending sorts in non-increasing order.
func WithDescending() Option {
	return func(o *Options) {
		o.Descending = true
	}
}
