// SPDX-License-Identifier: MIT
// Package: turing/report
//
// render.go — text, YAML and JSON renderers.
//
// Text layout (verbose sections in brackets):
//
//	[This report begins with n = … and t = g(n) = …]
//	[We must find K = … consecutive Gram blocks that satisfy Rosser's Rule]
//	[For n = …, Gram = …, -1^{n} = ±1, Hardy Z = …, Gram good = …]
//	[For Gram = …, Interval length = …, SubInterval len = …]
//	G( 0) -1, t, Z
//	G( i)  j, t, Z, rise[, zero crossing][, Lehmer]
//	G( c)  0, t, Z, rise…
//	Gram interval i (n = …): zeros found = z, verdict
//	Summary: …

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a renderer.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Z values are printed as %15.10f.
const (
	zWidth    = 15
	zDecimals = 10
)

// ErrFormat indicates an unknown output format.
var ErrFormat = errors.New("report: unknown format (want text, yaml or json)")

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrFormat)
}

// Write renders r to w in format f.
func Write(w io.Writer, r *Report, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, r)
	case FormatYAML:
		return WriteYAML(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	}

	return fmt.Errorf("Write: %q: %w", f, ErrFormat)
}

// WriteYAML serializes r as a YAML document.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// WriteJSON serializes r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}

// WriteText renders r in the classic column layout.
func WriteText(w io.Writer, r *Report) error {
	tw := &textWriter{w: w}

	if r.Verbose {
		tw.printf("This report begins with n = %s and t = g(n) = %s\n\n", r.FirstIndex, r.FirstGram)
		tw.printf("We must find K = %d consecutive Gram blocks that satisfy Rosser's Rule\n\n", r.K)
		for _, p := range r.Points {
			tw.printf("For n = %s, Gram = %s, -1^{n} = %2d, Hardy Z = %*.*f, Gram good = %t\n",
				p.N, p.Location, p.Parity, zWidth, zDecimals, p.Value, p.Good)
		}
		tw.printf("\nThe Gram interval lengths and sub-interval lengths are as follows:\n\n")
		for _, iv := range r.Intervals {
			tw.printf("For Gram = %s, Interval length = %s, SubInterval len = %s\n", iv.Start, iv.Length, iv.SubLength)
		}
		tw.printf("\nThe requested Turing Method data is as follows:\n\n")
	}

	for _, s := range r.Samples {
		tw.printf("%s, %s, %*.*f", s.Label, s.Location, zWidth, zDecimals, s.Value)
		if s.Rise != nil {
			tw.printf(", rise = %*.*f", zWidth, zDecimals, *s.Rise)
		}
		if s.Crossing {
			tw.printf(", zero crossing")
		}
		if s.Lehmer {
			tw.printf(", Lehmer")
		}
		tw.printf("\n")
	}

	tw.printf("\n")
	for _, iv := range r.Intervals {
		tw.printf("Gram interval %2d (n = %s): zeros found = %d, %s\n", iv.Interval, iv.N, iv.ZerosFound, iv.Verdict)
	}
	tw.printf("\nSummary: %d bad Gram points, %d intervals missing zeros, %d Lehmer flags, %d zeros found\n",
		r.Summary.BadGramPoints, r.Summary.Mismatches, r.Summary.LehmerFlags, r.Summary.ZerosFound)
	if !r.Verbose {
		tw.printf("K = %d\n", r.K)
	}
	if r.ElapsedSeconds > 0 {
		tw.printf("\nCompute took %f seconds to execute\n", r.ElapsedSeconds)
	}

	return tw.err
}

// textWriter remembers the first write error so rendering stays linear.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	if _, err := fmt.Fprintf(t.w, format, args...); err != nil {
		t.err = fmt.Errorf("WriteText: %w", err)
	}
}
