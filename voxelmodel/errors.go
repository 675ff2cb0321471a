package voxelmodel

import "errors"

var (
	// ErrNotAPath is returned when the model root directory does not exist.
	ErrNotAPath = errors.New("voxelmodel: not a valid path")

	// ErrNoValidViews is returned when zero views were constructed
	// successfully from the model directory.
	ErrNoValidViews = errors.New("voxelmodel: no valid views found")
)
