// Package report turns a gram.Table and its analysis.Result into a decision
// report: per Gram point, per interval and per sample rows, a verdict for
// every interval and summary counts.
//
// Assemble builds a plain Report value without touching its inputs. The
// value is then rendered by WriteText (the classic column layout) or
// serialized by WriteYAML/WriteJSON; Write picks one by Format.
package report
