// Package cyk decides context-free membership: does a grammar generate a
// given word? The empty word is answered directly from nullability; any
// other word runs the classic CYK dynamic program over the grammar's CNF
// form, per §4.K.
package cyk
