// Package lvlkata is a catalog of classic algorithm and data-structure
// exercises, one package per family, each with a textbook contract,
// sentinel errors, runnable examples and tests.
//
// Families
//
//	bsearch/     binary search variants, rotated arrays, median of two sorted arrays
//	sorting/     comparison and distribution sorts, quickselect, intervals, inversions
//	tree/        binary tree traversals, construction, codec, BST operations
//	linkedlist/  reversal, merging, Floyd cycle detection, palindrome check
//	lookup/      hashmap complement lookups: Two Sum family, anagrams, top-k
//	expr/        brackets, RPN, shunting-yard calculator, decoding, MinStack
//	monostack/   next greater, histogram areas, trapping water, sliding maximum
//	strmatch/    KMP, Z-function, Rabin-Karp, Booth rotation, sliding windows
//	grid/        islands and bridges on a grid treated as a graph
//
// Running exercises
//
//	catalog/            registry of every exercise by name, YAML case verification
//	internal/casefile/  YAML case-file loader shared by tests, catalog and CLI
//	cmd/lvlkata/        command line front end
//
// Quick start:
//
//	go run ./cmd/lvlkata run two-sum --nums 2,7,11,15 --target 9
//	go run ./cmd/lvlkata verify catalog/testdata/*.yaml
//
// Every operation is synchronous and allocation-light; nothing is shared
// between calls, so all functions are safe for concurrent use on distinct
// inputs.
package lvlkata
