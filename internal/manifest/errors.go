package manifest

import (
	"errors"
	"fmt"
)

// Errors reported while parsing or expanding a manifest.
var (
	// ErrMissingName indicates a manifest without the required name field.
	ErrMissingName = errors.New("manifest missing required field: name")

	// ErrMissingVersion indicates a manifest without the required version field.
	ErrMissingVersion = errors.New("manifest missing required field: version")

	// ErrFlavourShape indicates a flavour entry that is not a mapping and so
	// matches none of the three flavour shapes.
	ErrFlavourShape = errors.New("flavour matches no known shape")

	// ErrFlavourName indicates a flavour entry without a name.
	ErrFlavourName = errors.New("flavour missing required field: name")

	// ErrDimensionality indicates a matrix with zero dimensions or more than
	// four.
	ErrDimensionality = errors.New("matrix must declare between one and four dimensions")

	// ErrScalarRequired indicates a requirement or matrix value that is not a
	// YAML scalar.
	ErrScalarRequired = errors.New("value must be a scalar")
)

// ExpandError reports a flavour whose matrix expansion failed. Enumeration
// stops at the first failing flavour; Flavour carries the failing flavour's
// name template so the caller can identify it.
type ExpandError struct {
	Flavour string
	Err     error
}

func (e *ExpandError) Error() string {
	return fmt.Sprintf("expand flavour %q: %v", e.Flavour, e.Err)
}

func (e *ExpandError) Unwrap() error {
	return e.Err
}
