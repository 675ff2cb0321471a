package view

import "errors"

// Per-view construction errors (spec.md §7). These are always skipped
// by the caller (voxelmodel.New), never fatal on their own.
var (
	// ErrMissingFiles is returned when camera.{json,toml} or plane.bmp
	// is absent from a view's directory.
	ErrMissingFiles = errors.New("view: missing camera metadata or plane.bmp")

	// ErrBadSchema is returned when the camera metadata is structurally
	// invalid: a missing key, wrong type, wrong vector arity, or
	// non-numeric element.
	ErrBadSchema = errors.New("view: malformed camera metadata")

	// ErrBadImage is returned when plane.bmp cannot be decoded.
	ErrBadImage = errors.New("view: cannot decode plane.bmp")
)
