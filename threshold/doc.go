// Package threshold computes K, the number of consecutive Gram blocks that
// must satisfy Rosser's rule near a given height.
package threshold
