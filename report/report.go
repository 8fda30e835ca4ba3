// SPDX-License-Identifier: MIT
// Package: turing/report
//
// report.go — Report model and assembly.
//
// Contract:
//   • Assemble only reads the table and the result.
//   • Locations are rendered with the configured number of decimals,
//     interval lengths always with LengthDecimals.
//   • Errors: ErrMismatch when table and result disagree in shape, or when a
//     point lacks its index, location or (before the last) interval lengths.

package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/turing/analysis"
	"github.com/katalvlaran/turing/gram"
)

// Rendering constants.
const (
	DefaultDecimals = 6
	LengthDecimals  = 16
	maxDecimals     = 1000
)

// ErrMismatch indicates that a result does not belong to the table.
var ErrMismatch = errors.New("report: result does not match table")

// Report is the assembled, format-neutral decision report.
type Report struct {
	Target             string  `yaml:"target,omitempty" json:"target,omitempty"`
	FirstIndex         string  `yaml:"first_index" json:"first_index"`
	FirstGram          string  `yaml:"first_gram" json:"first_gram"`
	CountGram          int     `yaml:"count_gram" json:"count_gram"`
	SamplesPerInterval int     `yaml:"samples_per_interval" json:"samples_per_interval"`
	K                  int     `yaml:"k" json:"k"`
	Verbose            bool    `yaml:"-" json:"-"`
	ElapsedSeconds     float64 `yaml:"elapsed_seconds,omitempty" json:"elapsed_seconds,omitempty"`

	Points    []PointRow    `yaml:"points" json:"points"`
	Intervals []IntervalRow `yaml:"intervals" json:"intervals"`
	Samples   []SampleRow   `yaml:"samples" json:"samples"`
	Summary   Summary       `yaml:"summary" json:"summary"`
}

// PointRow describes one Gram point.
type PointRow struct {
	N        string  `yaml:"n" json:"n"`
	Location string  `yaml:"location" json:"location"`
	Parity   int     `yaml:"parity" json:"parity"`
	Value    float64 `yaml:"z" json:"z"`
	Good     bool    `yaml:"good" json:"good"`
}

// IntervalRow describes one Gram interval [g(n), g(n+1)).
type IntervalRow struct {
	Interval   int    `yaml:"interval" json:"interval"`
	N          string `yaml:"n" json:"n"`
	Start      string `yaml:"start" json:"start"`
	Length     string `yaml:"length" json:"length"`
	SubLength  string `yaml:"sub_length" json:"sub_length"`
	ZerosFound int    `yaml:"zeros_found" json:"zeros_found"`
	ExpectOdd  bool   `yaml:"expect_odd" json:"expect_odd"`
	Verdict    string `yaml:"verdict" json:"verdict"`
	Mismatch   bool   `yaml:"mismatch" json:"mismatch"`
}

// SampleRow describes one slot of the sample grid.
type SampleRow struct {
	Label    string   `yaml:"label" json:"label"`
	Interval int      `yaml:"interval" json:"interval"`
	Offset   int      `yaml:"offset" json:"offset"`
	Location string   `yaml:"location" json:"location"`
	Value    float64  `yaml:"z" json:"z"`
	Rise     *float64 `yaml:"rise,omitempty" json:"rise,omitempty"`
	Crossing bool     `yaml:"crossing" json:"crossing"`
	Lehmer   bool     `yaml:"lehmer" json:"lehmer"`
}

// Summary holds the headline counts.
type Summary struct {
	BadGramPoints int `yaml:"bad_gram_points" json:"bad_gram_points"`
	Mismatches    int `yaml:"mismatched_intervals" json:"mismatched_intervals"`
	LehmerFlags   int `yaml:"lehmer_flags" json:"lehmer_flags"`
	ZerosFound    int `yaml:"zeros_found" json:"zeros_found"`
}

type assembleConfig struct {
	decimals int
	target   string
	verbose  bool
}

// Option customizes Assemble.
type Option func(*assembleConfig)

// WithDecimals sets the number of decimals of printed locations.
// Panics if dp ∉ [0, 1000].
func WithDecimals(dp int) Option {
	if dp < 0 || dp > maxDecimals {
		panic(fmt.Sprintf("report: WithDecimals(%d)", dp))
	}
	return func(c *assembleConfig) {
		c.decimals = dp
	}
}

// WithTarget records the requested target in the report.
func WithTarget(target string) Option {
	return func(c *assembleConfig) {
		c.target = target
	}
}

// WithVerbose enables the verbose text sections.
func WithVerbose(v bool) Option {
	return func(c *assembleConfig) {
		c.verbose = v
	}
}

// Assemble builds a Report from tb, res and the threshold k.
// Complexity: O(countGram·S).
func Assemble(tb *gram.Table, res *analysis.Result, k int, opts ...Option) (*Report, error) {
	const method = "Assemble"

	cfg := assembleConfig{decimals: DefaultDecimals}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := checkShape(tb, res); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	r := &Report{
		Target:             cfg.target,
		FirstIndex:         tb.Points[0].Index.String(),
		FirstGram:          tb.Points[0].Location.Text('f', cfg.decimals),
		CountGram:          tb.CountGram(),
		SamplesPerInterval: tb.SamplesPerInterval(),
		K:                  k,
		Verbose:            cfg.verbose,
	}

	refValues := tb.ReferenceValues()
	for i, p := range tb.Points {
		r.Points = append(r.Points, PointRow{
			N:        p.Index.String(),
			Location: p.Location.Text('f', cfg.decimals),
			Parity:   p.Parity,
			Value:    refValues[i],
			Good:     res.IsGood[i],
		})
	}

	for i := 0; i < tb.CountGram(); i++ {
		p := tb.Points[i]
		v := res.Verdict(i)
		r.Intervals = append(r.Intervals, IntervalRow{
			Interval:   i,
			N:          p.Index.String(),
			Start:      p.Location.Text('f', LengthDecimals),
			Length:     p.IntervalLength.Text('f', LengthDecimals),
			SubLength:  p.SubIntervalLength.Text('f', LengthDecimals),
			ZerosFound: res.ZerosFound[i],
			ExpectOdd:  res.ExpectOdd[i],
			Verdict:    v.String(),
			Mismatch:   v != analysis.AsExpected,
		})
	}

	for flat := 0; flat < tb.Len(); flat++ {
		interval, offset, err := tb.Locate(flat)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		loc, err := tb.SampleLocation(flat)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		row := SampleRow{
			Label:    fmt.Sprintf("G(%2d) %2d", interval, offset),
			Interval: interval,
			Offset:   offset,
			Location: loc.Text('f', cfg.decimals),
			Value:    tb.Values[flat],
			Crossing: res.ZeroCrossing[flat],
			Lehmer:   res.Lehmer[flat],
		}
		if flat > 0 {
			rise := res.Rise[flat]
			row.Rise = &rise
		}
		r.Samples = append(r.Samples, row)
	}

	r.Summary = Summary{
		BadGramPoints: res.BadCount(),
		Mismatches:    res.Mismatches(),
		LehmerFlags:   res.LehmerCount(),
		ZerosFound:    res.TotalZeros(),
	}

	return r, nil
}

// checkShape verifies that res was derived from a table of tb's shape.
func checkShape(tb *gram.Table, res *analysis.Result) error {
	if tb == nil || res == nil {
		return fmt.Errorf("nil table or result: %w", ErrMismatch)
	}
	points, slots := len(tb.Points), tb.Len()
	switch {
	case len(res.IsGood) != points,
		len(res.ExpectOdd) != tb.CountGram(),
		len(res.ZerosFound) != tb.CountGram(),
		len(res.Rise) != slots,
		len(res.ZeroCrossing) != slots,
		len(res.Lehmer) != slots:
		return fmt.Errorf("%d points / %d slots: %w", points, slots, ErrMismatch)
	}
	for k, p := range tb.Points {
		if p.Index == nil || p.Location == nil {
			return fmt.Errorf("point %d has no index or location: %w", k, ErrMismatch)
		}
		if k < tb.CountGram() && (p.IntervalLength == nil || p.SubIntervalLength == nil) {
			return fmt.Errorf("interval %d has no lengths: %w", k, ErrMismatch)
		}
	}

	return nil
}
