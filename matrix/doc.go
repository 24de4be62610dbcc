// Package matrix implements Bool, a sparse boolean matrix of fixed shape
// (r, c) over the boolean semiring (+ = ∨, · = ∧).
//
// Bool backs every automaton algebra in package bmauto: intersection is a
// Kronecker product of per-label matrices, transitive closure is an
// iterated self-product under ∨, and the Tensor/Matrix CFPQ solvers
// (package cfpq) allocate and combine Bool matrices directly.
//
// Representation: one *bitset.BitSet per row, each of width c. Row storage
// keeps Nnz cheap (a row-by-row popcount) and keeps Mul's hot loop — OR one
// sparse row into an accumulator per nonzero source column — branch-light.
//
// Bool is immutable in shape after NewBool: every operation that combines
// two matrices (Or, Mul, Kron) allocates and returns a fresh matrix, leaving
// both operands untouched, matching the "solvers allocate fresh working
// matrices and do not mutate inputs" contract.
package matrix
