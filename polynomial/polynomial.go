// SPDX-License-Identifier: MIT
// Package polynomial: storage and membership.
//
// Terms are kept in a slice in insertion order; lookups are linear in the
// number of terms, which stays small for the polynomials this package targets.

package polynomial

import "fmt"

const (
	opAddMember = "AddMember"
	opAddPair   = "AddPair"
	opBuild     = "Build"
)

// Polynomial is an ordered, sparse set of terms keyed by degree.
// The zero value is an empty polynomial ready to use.
type Polynomial struct {
	terms []*Term
}

// New returns a polynomial holding copies of terms in order.
// No validation is performed: duplicate degrees and zero coefficients are
// stored as given. Nil terms are skipped.
func New(terms ...*Term) *Polynomial {
	p := &Polynomial{terms: make([]*Term, 0, len(terms))}
	for _, t := range terms {
		if t != nil {
			p.terms = append(p.terms, t.Clone())
		}
	}

	return p
}

// FromPairs is New for (degree, coefficient) pairs. No validation is performed.
func FromPairs(pairs ...Pair) *Polynomial {
	p := &Polynomial{terms: make([]*Term, 0, len(pairs))}
	for _, pr := range pairs {
		p.terms = append(p.terms, pr.Term())
	}

	return p
}

// Build returns a polynomial with terms added one by one through AddMember,
// failing on the first term AddMember rejects.
func Build(terms ...*Term) (*Polynomial, error) {
	p := &Polynomial{terms: make([]*Term, 0, len(terms))}
	for i, t := range terms {
		if err := p.AddMember(t); err != nil {
			return nil, fmt.Errorf("%s(term %d): %w", opBuild, i, err)
		}
	}

	return p, nil
}

// indexOf returns the position of the first term with the given degree, or -1.
func (p *Polynomial) indexOf(degree float64) int {
	for i, t := range p.terms {
		if t.Degree == degree {
			return i
		}
	}

	return -1
}

// AddMember appends a copy of t.
//
// Errors (checked in this order):
//   - ErrNilTerm if t is nil;
//   - ErrDuplicateDegree if a term with t.Degree is already stored;
//   - ErrMeaninglessTerm if t.Coefficient is 0 and t.Degree is not.
func (p *Polynomial) AddMember(t *Term) error {
	if t == nil {
		return polyErrorf(opAddMember, ErrNilTerm)
	}
	if p.indexOf(t.Degree) >= 0 {
		return polyErrorf(opAddMember, fmt.Errorf("degree %g: %w", t.Degree, ErrDuplicateDegree))
	}
	if t.Coefficient == 0 && t.Degree != 0 {
		return polyErrorf(opAddMember, fmt.Errorf("degree %g: %w", t.Degree, ErrMeaninglessTerm))
	}
	p.terms = append(p.terms, t.Clone())

	return nil
}

// AddPair is the tuple form of AddMember. It is stricter: a zero coefficient
// is rejected at every degree, degree 0 included, and both the zero
// coefficient and the duplicate degree report ErrDuplicateDegree.
func (p *Polynomial) AddPair(pr Pair) error {
	if p.indexOf(pr.Degree) >= 0 || pr.Coefficient == 0 {
		return polyErrorf(opAddPair, fmt.Errorf("degree %g: %w", pr.Degree, ErrDuplicateDegree))
	}

	return p.AddMember(pr.Term())
}

// RemoveMember deletes the term at degree and reports whether one was removed.
func (p *Polynomial) RemoveMember(degree float64) bool {
	i := p.indexOf(degree)
	if i < 0 {
		return false
	}
	copy(p.terms[i:], p.terms[i+1:])
	p.terms[len(p.terms)-1] = nil
	p.terms = p.terms[:len(p.terms)-1]

	return true
}

// ContainsMember reports whether a term with the given degree is stored.
func (p *Polynomial) ContainsMember(degree float64) bool {
	return p.indexOf(degree) >= 0
}

// Find returns a copy of the term stored at degree, or nil when absent.
func (p *Polynomial) Find(degree float64) *Term {
	i := p.indexOf(degree)
	if i < 0 {
		return nil
	}

	return p.terms[i].Clone()
}

// Coefficient returns the coefficient stored at degree, or 0 when absent.
func (p *Polynomial) Coefficient(degree float64) float64 {
	if i := p.indexOf(degree); i >= 0 {
		return p.terms[i].Coefficient
	}

	return 0
}

// SetCoefficient stores v at degree.
//
//   - existing term, v != 0: coefficient updated in place;
//   - existing term, v == 0: term removed;
//   - absent degree, v != 0: new term appended;
//   - absent degree, v == 0: no-op.
func (p *Polynomial) SetCoefficient(degree, v float64) {
	i := p.indexOf(degree)
	switch {
	case i >= 0 && v != 0:
		p.terms[i].Coefficient = v
	case i >= 0:
		p.RemoveMember(degree)
	case v != 0:
		p.terms = append(p.terms, NewTerm(degree, v))
	}
}

// Accumulate adds delta to the coefficient at degree (p[degree] += delta).
// A sum of zero removes the term.
func (p *Polynomial) Accumulate(degree, delta float64) {
	p.SetCoefficient(degree, p.Coefficient(degree)+delta)
}

// ToArray returns copies of all stored terms in insertion order.
func (p *Polynomial) ToArray() []*Term {
	out := make([]*Term, len(p.terms))
	for i, t := range p.terms {
		out[i] = t.Clone()
	}

	return out
}

// Count returns the number of stored terms.
func (p *Polynomial) Count() int { return len(p.terms) }

// Degree returns the largest stored degree, or 0 when there is none larger.
// An empty polynomial and one holding only negative degrees both report 0.
func (p *Polynomial) Degree() float64 {
	var deg float64
	for _, t := range p.terms {
		if t.Degree > deg {
			deg = t.Degree
		}
	}

	return deg
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{terms: p.ToArray()}
}
