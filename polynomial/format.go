// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// Evaluate returns Σ c·x^d over the stored terms.
// Non-integer and negative degrees follow math.Pow.
func (p *Polynomial) Evaluate(x float64) float64 {
	var sum float64
	for _, t := range p.terms {
		sum += t.Coefficient * math.Pow(x, t.Degree)
	}

	return sum
}

// String renders p in insertion order, e.g. "3x^2 + 4x - 1".
// The empty polynomial renders as "0".
func (p *Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range p.terms {
		c := t.Coefficient
		switch {
		case i == 0 && c < 0:
			sb.WriteByte('-')
			c = -c
		case i > 0 && c < 0:
			sb.WriteString(" - ")
			c = -c
		case i > 0:
			sb.WriteString(" + ")
		}
		writeTerm(&sb, c, t.Degree)
	}

	return sb.String()
}

// writeTerm writes |c|·x^d without sign; a unit coefficient is omitted
// unless the degree is 0.
func writeTerm(sb *strings.Builder, c, d float64) {
	if d == 0 {
		sb.WriteString(formatFloat(c))
		return
	}
	if c != 1 {
		sb.WriteString(formatFloat(c))
	}
	sb.WriteByte('x')
	if d != 1 {
		sb.WriteByte('^')
		sb.WriteString(formatFloat(d))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
