package analysis_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/turing/analysis"
	"github.com/katalvlaran/turing/gram"
)

// benchmarkAnalyze runs Analyze over a cosine grid of countGram×s samples.
func benchmarkAnalyze(b *testing.B, countGram, s int) {
	points := make([]gram.ReferencePoint, countGram+1)
	for k := range points {
		points[k] = gram.ReferencePoint{Index: big.NewInt(int64(k)), Parity: 1 - 2*(k%2)}
	}
	values := make([]float64, gram.SampleCount(countGram, s))
	for i := range values {
		values[i] = math.Cos(math.Pi * float64(i-1) / float64(s))
	}
	tb, err := gram.NewTable(points, values, countGram, s)
	if err != nil {
		b.Fatalf("NewTable failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = analysis.Analyze(tb); err != nil {
			b.Fatalf("Analyze failed: %v", err)
		}
	}
}

// BenchmarkAnalyze_Default uses the default 8×8 grid.
func BenchmarkAnalyze_Default(b *testing.B) { benchmarkAnalyze(b, 8, 8) }

// BenchmarkAnalyze_Largest uses the largest accepted 24×128 grid.
func BenchmarkAnalyze_Largest(b *testing.B) { benchmarkAnalyze(b, 24, 128) }
