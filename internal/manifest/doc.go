// Package manifest parses declarative build manifests and derives the
// concrete list of build flavors they declare.
//
// A manifest is a YAML document describing a package's name, version,
// dependency requirements, named recipes, build flavours, and exported
// artifacts:
//
//	name: mypkg
//	version: 1.4.0
//	requires:
//	  zlib: 1.2
//	flavours:
//	  - name: release
//	  - name: "build-{{row.os}}-{{row.arch}}"
//	    matrix:
//	      os: [linux, darwin]
//	      arch: [amd64, arm64]
//	exports:
//	  tools: [mytool]
//
// # Flavours
//
// A flavour entry takes one of three shapes: recipe-bearing (carries a
// recipes map), simple (a plain named variant), or matrix (a name template
// parametrized over one to four dimensions). Matrix flavours expand into one
// flavor identifier per combination of their dimension values.
//
// Parsing is all-or-nothing: a manifest either decodes completely into an
// immutable Manifest value or fails with an error. The package never logs
// and never substitutes defaults for missing required fields.
package manifest
