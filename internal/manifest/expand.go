package manifest

import (
	"fmt"
	"strings"
)

// rowPrefix is the scoping prefix manifest authors write in matrix name
// templates ({{row.os}}). It is rewritten to the renderer's binding-root
// selector before the template is compiled, so row.os binds the dimension
// key os.
const rowPrefix = "row."

// maxDimensions caps matrix dimensionality.
const maxDimensions = 4

// Renderer compiles a name template and renders it against a flat
// string-keyed binding set. The expansion engine depends on nothing else
// from the templating backend, so it can be exercised with a fake.
type Renderer interface {
	Render(template string, bindings map[string]string) (string, error)
}

// Flavors derives the concrete list of flavor identifiers the manifest
// declares. The sentinel "^" comes first when the manifest has top-level
// requires or recipes, followed by one block per declared flavour in
// document order. Simple and recipe-bearing flavours contribute their name
// verbatim; matrix flavours contribute their full expansion.
//
// Enumeration is all-or-nothing: the first flavour that fails to expand
// aborts the call with an *ExpandError naming it.
func (m *Manifest) Flavors(r Renderer) ([]string, error) {
	flavors := make([]string, 0, len(m.Flavours))

	if m.Requires != nil || m.Recipes != nil {
		flavors = append(flavors, Sentinel)
	}

	for _, f := range m.Flavours {
		switch f.Shape {
		case ShapeMatrix:
			expanded, err := Expand(r, f.Name, f.Matrix)
			if err != nil {
				return nil, &ExpandError{Flavour: f.Name, Err: err}
			}
			flavors = append(flavors, expanded...)
		default:
			flavors = append(flavors, f.Name)
		}
	}

	return flavors, nil
}

// Expand computes the cartesian product of the matrix dimensions and renders
// the name template once per combination. Dimensions are taken in the order
// given (declaration order when decoded from a document), and the product is
// row-major: the last dimension varies fastest. Each combination binds every
// dimension key to the display form of its chosen value.
//
// Dimensionality outside 1 through 4 fails with ErrDimensionality. A
// template that fails to compile, or that references a key absent from the
// bindings, fails the whole expansion; no partial output is returned.
func Expand(r Renderer, template string, dims []Dimension) ([]string, error) {
	if len(dims) == 0 || len(dims) > maxDimensions {
		return nil, fmt.Errorf("%w: got %d", ErrDimensionality, len(dims))
	}

	total := 1
	for _, d := range dims {
		total *= len(d.Values)
	}

	rewritten := strings.ReplaceAll(template, rowPrefix, ".")

	names := make([]string, 0, total)
	index := make([]int, len(dims))
	for n := 0; n < total; n++ {
		bindings := make(map[string]string, len(dims))
		for i, d := range dims {
			bindings[d.Key] = d.Values[index[i]].String()
		}

		name, err := r.Render(rewritten, bindings)
		if err != nil {
			return nil, fmt.Errorf("render template %q: %w", template, err)
		}
		names = append(names, name)

		// Advance the combination odometer, last dimension fastest.
		for i := len(index) - 1; i >= 0; i-- {
			index[i]++
			if index[i] < len(dims[i].Values) {
				break
			}
			index[i] = 0
		}
	}

	return names, nil
}
