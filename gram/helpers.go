// SPDX-License-Identifier: MIT
// Package: turing/gram
//
// helpers.go — small internal helpers shared by the package.

package gram

import "fmt"

// builderErrorf prefixes an error with the method name. %w verbs in format
// are preserved, so sentinels stay matchable with errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
