// SPDX-License-Identifier: MIT

// Package polynomial provides a sparse single-variable polynomial keyed by
// term degree.
//
// A Polynomial stores its terms in insertion order. Mutating entry points
// (AddMember, AddPair, SetCoefficient, Accumulate, RemoveMember) keep two
// invariants:
//
//   - at most one term per degree;
//   - no stored term has a zero coefficient, except a degree-0 term.
//
// New and FromPairs store what they are given without validation; Build runs
// every term through AddMember.
//
// Arithmetic (Add, Sub, Mul and the method forms) returns a fresh Polynomial
// whose terms are copies, so results never share terms with their operands.
//
//	p := polynomial.FromPairs(polynomial.Pair{Degree: 2, Coefficient: 3})
//	q := polynomial.FromPairs(polynomial.Pair{Degree: 2, Coefficient: 4})
//	sum, _ := polynomial.Add(p, q) // 7x^2
package polynomial
