package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FlavourShape identifies which of the three flavour shapes an entry matched.
type FlavourShape int

// Flavour shapes, in resolution priority order.
const (
	// ShapeRecipes is a named flavour carrying its own recipes.
	ShapeRecipes FlavourShape = iota

	// ShapeMatrix is a name template parametrized over dimensioned value lists.
	ShapeMatrix

	// ShapeSimple is a plain named flavour.
	ShapeSimple
)

// Dimension is one named axis of a matrix flavour: a key and its ordered
// values. Dimensions keep the order they were declared in the document.
type Dimension struct {
	Key    string
	Values []Version
}

// Flavour is one entry of a manifest's flavours list. The three shapes are
// untagged in the document, so the shape is inferred structurally from the
// fields present. Resolution order is a contract: an entry with a recipes
// field is recipe-bearing, otherwise an entry with a matrix field is a
// matrix, otherwise it is simple. An entry carrying both recipes and matrix
// therefore always resolves to recipe-bearing.
type Flavour struct {
	// Shape records which shape the entry resolved to.
	Shape FlavourShape

	// Name is the flavour name; for matrix flavours it is a name template
	// with {{row.key}} placeholders.
	Name string

	// Recipes is populated for recipe-bearing flavours.
	Recipes RecipeMap

	// Matrix is populated for matrix flavours, in declaration order.
	Matrix []Dimension

	// Requirement sets, each optional for every shape.
	Requires       RequirementSet
	LoadRequires   RequirementSet
	BuildRequires  RequirementSet
	TestRequires   RequirementSet
	SystemRequires RequirementSet

	// Supports, Platforms, and Sites restrict where the flavour applies.
	Supports  []string
	Platforms []string
	Sites     []string
}

// flavourFields is the shared decode target for all three shapes. The shape
// itself is decided from the raw node before decoding.
type flavourFields struct {
	Name           string         `yaml:"name"`
	Recipes        RecipeMap      `yaml:"recipes,omitempty"`
	Matrix         matrix         `yaml:"matrix,omitempty"`
	Requires       RequirementSet `yaml:"requires,omitempty"`
	LoadRequires   RequirementSet `yaml:"loadRequires,omitempty"`
	BuildRequires  RequirementSet `yaml:"buildRequires,omitempty"`
	TestRequires   RequirementSet `yaml:"testRequires,omitempty"`
	SystemRequires RequirementSet `yaml:"systemRequires,omitempty"`
	Supports       []string       `yaml:"supports,omitempty"`
	Platforms      []string       `yaml:"platforms,omitempty"`
	Sites          []string       `yaml:"sites,omitempty"`
}

// matrix decodes a YAML mapping of dimension name to value list while
// preserving the document's key order. A plain map would lose it.
type matrix []Dimension

func (m *matrix) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: matrix must be a mapping of dimension to value list", node.Line)
	}

	dims := make([]Dimension, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var values []Version
		if err := valueNode.Decode(&values); err != nil {
			return fmt.Errorf("matrix dimension %q: %w", keyNode.Value, err)
		}
		dims = append(dims, Dimension{Key: keyNode.Value, Values: values})
	}

	*m = dims
	return nil
}

// UnmarshalYAML resolves the flavour's shape from the keys present in the
// mapping, then decodes the fields for that shape.
func (f *Flavour) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w", node.Line, ErrFlavourShape)
	}

	var fields flavourFields
	if err := node.Decode(&fields); err != nil {
		return err
	}
	if fields.Name == "" {
		return fmt.Errorf("line %d: %w", node.Line, ErrFlavourName)
	}

	*f = Flavour{
		Shape:          resolveShape(node),
		Name:           fields.Name,
		Requires:       fields.Requires,
		LoadRequires:   fields.LoadRequires,
		BuildRequires:  fields.BuildRequires,
		TestRequires:   fields.TestRequires,
		SystemRequires: fields.SystemRequires,
		Supports:       fields.Supports,
		Platforms:      fields.Platforms,
		Sites:          fields.Sites,
	}

	switch f.Shape {
	case ShapeRecipes:
		f.Recipes = fields.Recipes
	case ShapeMatrix:
		f.Matrix = fields.Matrix
	}
	return nil
}

// resolveShape applies the documented trial order: recipe-bearing, then
// matrix, then simple.
func resolveShape(node *yaml.Node) FlavourShape {
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == "recipes" {
			return ShapeRecipes
		}
	}
	for i := 0; i < len(node.Content); i += 2 {
		if node.Content[i].Value == "matrix" {
			return ShapeMatrix
		}
	}
	return ShapeSimple
}
