// Package joaat implements the Jenkins one-at-a-time hash in the two
// widths the script runtimes use.
//
// Two input policies exist. The literal form folds raw bytes unchanged.
// The string form applies the runtime's identifier preprocessing first:
// ASCII uppercase folds to lowercase, backslashes become forward slashes,
// and a leading double quote makes the hash cover only the quoted span.
// Both forms stop at the first NUL byte and finish with the avalanche
// rounds, so hashing the empty string yields the finalized seed.
//
// All arithmetic wraps modulo the hash width; overflow is part of the
// function, not an error. Everything in this package is pure and safe for
// concurrent use.
package joaat
