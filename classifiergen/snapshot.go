// Package classifiergen turns the canonical PyPI trove classifier data into
// the generated Go snapshot package.
//
// The pipeline is deliberately small: a Source loads the upstream classifier
// list and version, Generate renders the enumeration deterministically, and
// WriteFile commits it atomically. Re-running against unchanged upstream data
// produces byte-identical output.
package classifiergen

import (
	"strings"

	"github.com/pytrove/trove-classifiers/errors"
)

// Snapshot is the upstream classifier data at generation time: the full
// classifier list and the version of the pypa/trove-classifiers distribution
// that published it. Classifier strings are opaque; this package never
// constructs them, only consumes them.
type Snapshot struct {
	Version     string   `json:"version"`
	Classifiers []string `json:"classifiers"`
}

// Validate checks that the snapshot has the expected shape.
// Returns an error wrapping errors.ErrMalformedSource otherwise.
func (s *Snapshot) Validate() error {
	if s == nil {
		return errors.Wrap(errors.ErrMalformedSource, "nil snapshot")
	}
	if strings.TrimSpace(s.Version) == "" {
		return errors.Wrap(errors.ErrMalformedSource, "missing upstream version")
	}
	if len(s.Classifiers) == 0 {
		return errors.Wrap(errors.ErrMalformedSource, "empty classifier list")
	}

	seen := make(map[string]struct{}, len(s.Classifiers))
	for _, c := range s.Classifiers {
		if c == "" {
			return errors.Wrap(errors.ErrMalformedSource, "empty classifier string")
		}
		if _, dup := seen[c]; dup {
			return errors.Wrapf(errors.ErrMalformedSource, "duplicate classifier %q", c)
		}
		seen[c] = struct{}{}
	}

	return nil
}
