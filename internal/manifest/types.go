package manifest

// Sentinel is the flavor identifier emitted for a manifest's own implicit
// default flavour, present whenever the manifest declares top-level requires
// or recipes.
const Sentinel = "^"

// RequirementSet maps a dependency name to its required version bound. It is
// a lookup table; iteration order carries no meaning.
type RequirementSet map[string]Version

// Recipe is a named sequence of build steps with its own requirement sets.
type Recipe struct {
	// Requires lists dependencies needed to run the recipe.
	Requires RequirementSet `yaml:"requires,omitempty"`

	// LoadRequires lists dependencies needed before the recipe is loaded.
	LoadRequires RequirementSet `yaml:"loadRequires,omitempty"`

	// Steps is the ordered list of build steps.
	Steps []string `yaml:"steps"`

	// Contributors credits the recipe's authors, in order.
	Contributors []string `yaml:"contributors,omitempty"`
}

// RecipeMap maps a recipe name to its definition.
type RecipeMap map[string]Recipe

// Exports maps an export category name (e.g. "tools") to the ordered list of
// artifact identifiers published under it. No category has special structural
// treatment.
type Exports map[string][]string

// Manifest is the parsed form of a build-manifest document. It is constructed
// once by Parse or Load and read-only afterwards; a Manifest may be shared
// across concurrent readers without coordination.
type Manifest struct {
	// Name is the package name. Required.
	Name string `yaml:"name"`

	// Version is the package version, kept as free-form text.
	Version string `yaml:"version"`

	// Supports, Platforms, and Sites restrict where the package applies.
	Supports  []string `yaml:"supports,omitempty"`
	Platforms []string `yaml:"platforms,omitempty"`
	Sites     []string `yaml:"sites,omitempty"`

	// Requires lists the package's runtime dependencies.
	Requires RequirementSet `yaml:"requires,omitempty"`

	// LoadRequires, BuildRequires, TestRequires, and SystemRequires list
	// dependencies for the corresponding phase.
	LoadRequires   RequirementSet `yaml:"loadRequires,omitempty"`
	BuildRequires  RequirementSet `yaml:"buildRequires,omitempty"`
	TestRequires   RequirementSet `yaml:"testRequires,omitempty"`
	SystemRequires RequirementSet `yaml:"systemRequires,omitempty"`

	// Recipes holds the manifest's top-level recipes.
	Recipes RecipeMap `yaml:"recipes,omitempty"`

	// Flavours lists the declared build flavours, in document order.
	Flavours []Flavour `yaml:"flavours,omitempty"`

	// Exports is the registry of exported artifacts by category.
	Exports Exports `yaml:"exports,omitempty"`
}
