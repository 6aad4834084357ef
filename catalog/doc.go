// Package catalog names every exercise of the module and runs it over
// YAML case files.
//
// What
//
//   - Problem binds a kebab-case name ("two-sum", "tree-level-order", …)
//     to a runner that reads its inputs from a Case.
//   - Registry stores problems; Default returns one with the full catalog.
//   - Verify runs cases through a problem and reports a Result per case.
//
// Case fields
//
//	nums, nums2   primary and secondary int slices
//	target, k     scalar inputs
//	s, t          string inputs (text/pattern, pattern/words, …)
//	tree          level-order binary tree with null for missing children
//	matrix        [][]int (grids, intervals, four-sum rows)
//	words         []string (RPN tokens, character grids, commands)
//	want          expected output in plain YAML
//	wantErr       the runner must fail
//
// Outputs are compared after a YAML round trip, so fixed-size arrays,
// slices and whole floats compare equal to their YAML spelling. Trees come
// back in level order, linked lists as slices.
//
// Errors
//
//   - ErrUnknownProblem   from Lookup.
//   - ErrDuplicateProblem, ErrInvalidProblem from Register.
package catalog
