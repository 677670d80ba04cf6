// SPDX-License-Identifier: MIT

// Package gridio reads and writes the YAML documents used by the sml command.
//
//	matrix: [[1, 2], [3, 4]]
//
//	polynomial:
//	  - {degree: 2, coefficient: 3}
//	  - {degree: 0, coefficient: -1}
//
//	training:
//	  input:  [[0, 0], [0, 1], [1, 0], [1, 1]]
//	  output: [[0], [1], [1], [0]]
//
// Unknown keys are rejected.
package gridio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/VsIG-official/SML/matrix"
	"github.com/VsIG-official/SML/polynomial"
)

// ErrMissingKey is returned when a document lacks its top-level key.
var ErrMissingKey = errors.New("gridio: missing document key")

// TermDoc is one polynomial term.
type TermDoc struct {
	Degree      float64 `yaml:"degree"`
	Coefficient float64 `yaml:"coefficient"`
}

type matrixDoc struct {
	Matrix [][]float64 `yaml:"matrix"`
}

type polynomialDoc struct {
	Polynomial []TermDoc `yaml:"polynomial"`
}

type trainingDoc struct {
	Training *struct {
		Input  [][]float64 `yaml:"input"`
		Output [][]float64 `yaml:"output"`
	} `yaml:"training"`
}

// decode parses a single YAML document from r into v, rejecting unknown fields.
func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document: %w", ErrMissingKey)
		}
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// withFile opens path and hands it to read.
func withFile(path string, read func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = read(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadMatrix decodes a `matrix:` document.
func ReadMatrix(r io.Reader) (*matrix.Dense, error) {
	var doc matrixDoc
	if err := decode(r, &doc); err != nil {
		return nil, err
	}
	if doc.Matrix == nil {
		return nil, fmt.Errorf("%q: %w", "matrix", ErrMissingKey)
	}
	return matrix.NewDenseFrom(doc.Matrix)
}

// ReadMatrixFile is ReadMatrix on a file.
func ReadMatrixFile(path string) (m *matrix.Dense, err error) {
	err = withFile(path, func(r io.Reader) error {
		m, err = ReadMatrix(r)
		return err
	})
	return m, err
}

// ReadPolynomial decodes a `polynomial:` document. Terms go through
// polynomial.Build, so duplicate degrees and meaningless terms are rejected.
func ReadPolynomial(r io.Reader) (*polynomial.Polynomial, error) {
	var doc polynomialDoc
	if err := decode(r, &doc); err != nil {
		return nil, err
	}
	if doc.Polynomial == nil {
		return nil, fmt.Errorf("%q: %w", "polynomial", ErrMissingKey)
	}
	terms := make([]*polynomial.Term, len(doc.Polynomial))
	for i, t := range doc.Polynomial {
		terms[i] = polynomial.NewTerm(t.Degree, t.Coefficient)
	}
	return polynomial.Build(terms...)
}

// ReadPolynomialFile is ReadPolynomial on a file.
func ReadPolynomialFile(path string) (p *polynomial.Polynomial, err error) {
	err = withFile(path, func(r io.Reader) error {
		p, err = ReadPolynomial(r)
		return err
	})
	return p, err
}

// ReadTraining decodes a `training:` document into input and target matrices.
// Shapes are checked by the perceptron, not here.
func ReadTraining(r io.Reader) (x, y *matrix.Dense, err error) {
	var doc trainingDoc
	if err = decode(r, &doc); err != nil {
		return nil, nil, err
	}
	if doc.Training == nil {
		return nil, nil, fmt.Errorf("%q: %w", "training", ErrMissingKey)
	}
	if x, err = matrix.NewDenseFrom(doc.Training.Input); err != nil {
		return nil, nil, fmt.Errorf("training.input: %w", err)
	}
	if y, err = matrix.NewDenseFrom(doc.Training.Output); err != nil {
		return nil, nil, fmt.Errorf("training.output: %w", err)
	}
	return x, y, nil
}

// ReadTrainingFile is ReadTraining on a file.
func ReadTrainingFile(path string) (x, y *matrix.Dense, err error) {
	err = withFile(path, func(r io.Reader) error {
		x, y, err = ReadTraining(r)
		return err
	})
	return x, y, err
}

// WriteMatrix encodes m as a `matrix:` document with one flow-style row per line.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return err
	}

	rows := &yaml.Node{Kind: yaml.SequenceNode}
	for i := 0; i < m.Rows(); i++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			row.Content = append(row.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: formatFloat(v)})
		}
		rows.Content = append(rows.Content, row)
	}
	if m.Rows() == 0 {
		rows.Style = yaml.FlowStyle
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "matrix"},
		rows,
	}}

	return encode(w, doc)
}

// WritePolynomial encodes p as a `polynomial:` document in term order.
func WritePolynomial(w io.Writer, p *polynomial.Polynomial) error {
	if p == nil {
		return polynomial.ErrNilPolynomial
	}
	terms := p.ToArray()
	doc := polynomialDoc{Polynomial: make([]TermDoc, len(terms))}
	for i, t := range terms {
		doc.Polynomial[i] = TermDoc{Degree: t.Degree, Coefficient: t.Coefficient}
	}

	return encode(w, doc)
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// formatFloat renders v so that YAML resolves it back to the same float.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ".nan"
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
