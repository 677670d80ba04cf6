// SPDX-License-Identifier: MIT
// Package polynomial: arithmetic.
//
// Every operation validates both operands first and builds a fresh result;
// operands are never mutated. Degrees are merged through Accumulate, so
// matching degrees combine and degrees that cancel to zero disappear.

package polynomial

const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// validateOperands returns ErrNilPolynomial if either operand is nil.
func validateOperands(a, b *Polynomial) error {
	if a == nil || b == nil {
		return ErrNilPolynomial
	}

	return nil
}

// Add returns a + b.
func Add(a, b *Polynomial) (*Polynomial, error) {
	if err := validateOperands(a, b); err != nil {
		return nil, polyErrorf(opAdd, err)
	}
	res := a.Clone()
	for _, t := range b.terms {
		res.Accumulate(t.Degree, t.Coefficient)
	}

	return res, nil
}

// Sub returns a - b.
//
// If any term stored in a has a zero coefficient, the result is the empty
// polynomial regardless of b. For a polynomial built through AddMember this
// only happens with a zero constant term.
func Sub(a, b *Polynomial) (*Polynomial, error) {
	if err := validateOperands(a, b); err != nil {
		return nil, polyErrorf(opSub, err)
	}
	for _, t := range a.terms {
		if t.Coefficient == 0 {
			return &Polynomial{}, nil
		}
	}
	res := a.Clone()
	for _, t := range b.terms {
		res.Accumulate(t.Degree, -t.Coefficient)
	}

	return res, nil
}

// Mul returns a × b. Every term pair contributes c_a·c_b at degree d_a+d_b;
// zero products are skipped.
// Complexity: O(|a|·|b|·|result|).
func Mul(a, b *Polynomial) (*Polynomial, error) {
	if err := validateOperands(a, b); err != nil {
		return nil, polyErrorf(opMul, err)
	}
	res := &Polynomial{}
	var product float64
	for _, ta := range a.terms {
		for _, tb := range b.terms {
			product = ta.Coefficient * tb.Coefficient
			if product == 0 {
				continue
			}
			res.Accumulate(ta.Degree+tb.Degree, product)
		}
	}

	return res, nil
}

// Add is the method form of Add(p, q).
func (p *Polynomial) Add(q *Polynomial) (*Polynomial, error) { return Add(p, q) }

// Subtract is the method form of Sub(p, q).
func (p *Polynomial) Subtract(q *Polynomial) (*Polynomial, error) { return Sub(p, q) }

// Multiply is the method form of Mul(p, q).
func (p *Polynomial) Multiply(q *Polynomial) (*Polynomial, error) { return Mul(p, q) }

// PlusPair returns p + FromPairs(pr).
func (p *Polynomial) PlusPair(pr Pair) (*Polynomial, error) { return Add(p, FromPairs(pr)) }

// MinusPair returns p - FromPairs(pr).
func (p *Polynomial) MinusPair(pr Pair) (*Polynomial, error) { return Sub(p, FromPairs(pr)) }

// TimesPair returns p × FromPairs(pr).
func (p *Polynomial) TimesPair(pr Pair) (*Polynomial, error) { return Mul(p, FromPairs(pr)) }
