package manifest

import "sort"

// toolsCategory is the conventional export category for command-line tools.
// Structurally it is one key among many.
const toolsCategory = "tools"

// ExportKeys returns the export category names, sorted for reproducible
// output. It returns nil when the manifest declares no exports at all, which
// is distinct from an empty exports mapping.
func (m *Manifest) ExportKeys() []string {
	if m.Exports == nil {
		return nil
	}

	keys := make([]string, 0, len(m.Exports))
	for k := range m.Exports {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ExportsFor returns the artifacts exported under category, in declaration
// order. The second result distinguishes a missing category from one that
// exports an empty list.
func (m *Manifest) ExportsFor(category string) ([]string, bool) {
	artifacts, ok := m.Exports[category]
	return artifacts, ok
}

// Tools returns the artifacts exported under the tools category, or an empty
// list when the category is absent.
func (m *Manifest) Tools() []string {
	tools, ok := m.ExportsFor(toolsCategory)
	if !ok {
		return []string{}
	}
	return tools
}
