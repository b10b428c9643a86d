// SPDX-License-Identifier: MIT

// Package parse is the toolkit for the irregular text formats puzzle inputs
// come in: whitespace and separator splitting, blank-line grouping,
// punctuation-forgiving number extraction (Things), and a small printf-like
// template matcher (Scan).
//
// Errors:
//
//   - ErrInt   a captured field is not a valid integer or overflows its type.
//   - ErrShape the input does not follow the expected literal skeleton.
//
// Both are wrapped in *Error, which records the offending input and the
// byte offset of the failure; match with errors.Is / errors.As.
package parse
