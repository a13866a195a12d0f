package classifiergen

import (
	"strconv"
	"strings"

	"github.com/pytrove/trove-classifiers/errors"
)

// Member is one enumeration member of the generated artifact: a derived
// identifier bound to the exact upstream classifier string.
type Member struct {
	Name  string
	Value string
}

// digitPrefix is prepended when a derived name would start with a digit,
// which Go identifiers cannot.
const digitPrefix = "C_"

// DeriveName maps a classifier string to its candidate identifier.
//
// ASCII letters and digits are kept, everything else (including the " :: "
// level separator) becomes an underscore; runs of underscores collapse to
// one, leading and trailing underscores are trimmed, and the result is
// upper-cased. The identifier alphabet is ASCII-only even though Go permits
// Unicode identifiers, so name stability never depends on Unicode tables.
//
//	"License :: OSI Approved :: MIT License" -> "LICENSE_OSI_APPROVED_MIT_LICENSE"
//	"Programming Language :: C++"            -> "PROGRAMMING_LANGUAGE_C"
func DeriveName(classifier string) string {
	var b strings.Builder
	b.Grow(len(classifier))

	pendingUnderscore := false
	for i := 0; i < len(classifier); i++ {
		c := classifier[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
			fallthrough
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			if pendingUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingUnderscore = false
			b.WriteByte(c)
		default:
			// Separator or stripped character; at most one underscore,
			// and none at the start or end.
			pendingUnderscore = true
		}
	}

	name := b.String()
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		name = digitPrefix + name
	}
	return name
}

// assignNames derives a unique identifier for every classifier, processing
// them in the given order. The first claimant of a base name keeps it;
// later claimants get a numeric suffix (_2, _3, ...). Because the input is
// already sorted, the full name assignment is a deterministic function of
// the classifier set alone.
func assignNames(sorted []string) ([]Member, error) {
	members := make([]Member, 0, len(sorted))
	taken := make(map[string]struct{}, len(sorted))

	for _, classifier := range sorted {
		name := DeriveName(classifier)

		if _, exists := taken[name]; exists {
			base := name
			resolved := false
			// A suffix in [2, len+1] is always reachable for a bounded set;
			// running out means the invariant is broken.
			for n := 2; n <= len(sorted)+1; n++ {
				name = base + "_" + strconv.Itoa(n)
				if _, exists := taken[name]; !exists {
					resolved = true
					break
				}
			}
			if !resolved {
				return nil, errors.Wrapf(errors.ErrCollisionUnresolvable,
					"no free suffix for %q (classifier %q)", base, classifier)
			}
		}

		taken[name] = struct{}{}
		members = append(members, Member{Name: name, Value: classifier})
	}

	return members, nil
}
