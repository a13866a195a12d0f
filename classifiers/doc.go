// Package classifiers mirrors the canonical set of PyPI trove classifiers as
// typed Go constants, so downstream tooling can reference classifiers by name
// without a runtime dependency on the upstream data source.
//
// Classifiers are standardized metadata tags attachable to Python package
// distributions, first defined in PEP 301; the canonical, versioned list is
// published by pypa/trove-classifiers (https://pypi.org/classifiers/).
//
// classifiers.go is a generated snapshot of that list and is only ever
// modified by the generator. PypaVersion records the upstream version the
// snapshot was taken from. Regenerate after updating the installed
// trove_classifiers distribution:
//
//	go generate ./classifiers
//
//go:generate go run github.com/pytrove/trove-classifiers/cmd/classifiergen --output classifiers.go
package classifiers
