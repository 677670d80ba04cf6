// SPDX-License-Identifier: MIT
package perceptron_test

import (
	"testing"

	"github.com/VsIG-official/SML/matrix"
	"github.com/VsIG-official/SML/perceptron"
)

var sinkErr error

func BenchmarkTrainStep(b *testing.B) {
	b.ReportAllocs()
	x, _ := matrix.NewDenseFrom(gateInput)
	y, _ := matrix.NewDenseFrom(xorOutput)
	p, err := perceptron.New(x)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkErr = p.Train(x, y, 1)
	}
}
