package manifest

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// VersionKind identifies which variant of the Version union is populated.
type VersionKind int

// Version variants, in comparison rank order.
const (
	VersionText VersionKind = iota
	VersionFloat
	VersionInt
)

// Version is a tolerant scalar for manifest version-like values. YAML leaves
// the numeric-versus-string question to the document author: an unquoted 7
// is an integer, 7.1 is a float, and 7.3.2 or any quoted token is a string.
// Version preserves whichever form the source used.
//
// Exactly one variant is populated per value.
type Version struct {
	kind  VersionKind
	text  string
	real  float32
	whole uint16
}

// TextVersion returns a Version holding a string value.
func TextVersion(s string) Version {
	return Version{kind: VersionText, text: s}
}

// FloatVersion returns a Version holding a float value.
func FloatVersion(f float32) Version {
	return Version{kind: VersionFloat, real: f}
}

// IntVersion returns a Version holding an integer value.
func IntVersion(n uint16) Version {
	return Version{kind: VersionInt, whole: n}
}

// Classify interprets a scalar's lexical form as a Version. Precedence is
// integer pattern, then float pattern, then string: "7" is an integer, "7.1"
// a float, "7.3.2" and "v1" strings. Integers that overflow 16 bits fall
// through to the float pattern.
func Classify(s string) Version {
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return IntVersion(uint16(n))
	}
	if f, err := strconv.ParseFloat(s, 32); err == nil {
		return FloatVersion(float32(f))
	}
	return TextVersion(s)
}

// Kind reports which variant is populated.
func (v Version) Kind() VersionKind {
	return v.kind
}

// String renders the value in its natural textual form, with no quoting.
// Displaying a Version and re-classifying the result yields an equal value.
func (v Version) String() string {
	switch v.kind {
	case VersionInt:
		return strconv.FormatUint(uint64(v.whole), 10)
	case VersionFloat:
		return strconv.FormatFloat(float64(v.real), 'g', -1, 32)
	default:
		return v.text
	}
}

// Equal reports whether two Versions hold the same variant and value.
func (v Version) Equal(o Version) bool {
	return v == o
}

// Compare orders two Versions structurally. Values of the same variant
// compare naturally; across variants the ordering is positional
// (text < float < int) and carries no numeric meaning. The result is a
// partial order: callers must not assume IntVersion(2) sorts near
// FloatVersion(2.0).
func (v Version) Compare(o Version) int {
	if v.kind != o.kind {
		if v.kind < o.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case VersionInt:
		switch {
		case v.whole < o.whole:
			return -1
		case v.whole > o.whole:
			return 1
		}
	case VersionFloat:
		switch {
		case v.real < o.real:
			return -1
		case v.real > o.real:
			return 1
		}
	default:
		switch {
		case v.text < o.text:
			return -1
		case v.text > o.text:
			return 1
		}
	}
	return 0
}

// UnmarshalYAML classifies a YAML scalar by its lexical form. Unquoted
// numerics keep their numeric variant; quoted numerics and everything else
// stay text. Non-scalar nodes are rejected.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrScalarRequired)
	}

	switch node.Tag {
	case "!!int", "!!float":
		*v = Classify(node.Value)
	default:
		*v = TextVersion(node.Value)
	}
	return nil
}
