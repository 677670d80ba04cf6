// SPDX-License-Identifier: MIT

package polynomial

// Term is a single c·x^d member of a Polynomial.
// A Term on its own enforces nothing; the owning Polynomial rejects
// meaningless terms when they are added.
type Term struct {
	Degree      float64
	Coefficient float64
}

// NewTerm returns a term with the given degree and coefficient.
func NewTerm(degree, coefficient float64) *Term {
	return &Term{Degree: degree, Coefficient: coefficient}
}

// Clone returns an independent copy of t, or nil for a nil t.
func (t *Term) Clone() *Term {
	if t == nil {
		return nil
	}
	cp := *t

	return &cp
}

// Pair is the lightweight (degree, coefficient) value used by the tuple
// convenience entry points. Convert with Term.
type Pair struct {
	Degree      float64
	Coefficient float64
}

// Term converts the pair into a freshly allocated *Term.
func (p Pair) Term() *Term {
	return NewTerm(p.Degree, p.Coefficient)
}
