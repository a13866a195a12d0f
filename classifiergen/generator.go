package classifiergen

import (
	"fmt"
	"sort"
	"strings"
)

// OutputPackage is the package name of the generated artifact.
const OutputPackage = "classifiers"

// Generate renders the complete classifiers package source for a snapshot.
//
// The artifact is a deterministic function of the snapshot: members appear in
// ascending byte order of their classifier string, identifiers are assigned
// in that order, and the upstream version is propagated verbatim into the
// PypaVersion constant. Generating the same snapshot twice yields
// byte-identical output.
//
// Each member is emitted as a standalone single-line const declaration so the
// file is stable under gofmt regardless of identifier lengths.
func Generate(snap *Snapshot) ([]byte, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]string, len(snap.Classifiers))
	copy(sorted, snap.Classifiers)
	sort.Strings(sorted)

	members, err := assignNames(sorted)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder

	sb.WriteString("// Code generated by classifiergen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", OutputPackage)

	sb.WriteString("// PypaVersion is the version of the pypa/trove-classifiers distribution\n")
	sb.WriteString("// this snapshot was generated from.\n")
	fmt.Fprintf(&sb, "const PypaVersion = %q\n\n", snap.Version)

	sb.WriteString("// Classifier is a single PyPI trove classifier string, exactly as\n")
	sb.WriteString("// published upstream.\n")
	sb.WriteString("type Classifier string\n\n")

	for _, m := range members {
		fmt.Fprintf(&sb, "const %s Classifier = %q\n", m.Name, m.Value)
	}

	return []byte(sb.String()), nil
}
