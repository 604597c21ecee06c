// SPDX-License-Identifier: MIT
// Package: anneal/problems
//
// types.go — sentinel errors and problem names.

package problems

import "errors"

var (
	// ErrBadMatrix indicates a distance matrix that is not square, has fewer than
	// three cities, or holds a negative, NaN or infinite entry.
	ErrBadMatrix = errors.New("problems: invalid distance matrix")

	// ErrBadDimension indicates a non-positive dimension for a continuous problem.
	ErrBadDimension = errors.New("problems: dimension must be positive")

	// ErrBadSolution indicates a solution whose shape does not fit the problem.
	ErrBadSolution = errors.New("problems: solution does not fit the problem")
)

// Problem names, as used by run files and the CLI.
const (
	NameTour      = "tour"
	NameRastrigin = "rastrigin"
	NameSphere    = "sphere"
)
