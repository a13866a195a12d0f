package classifiergen

import (
	"bufio"
	"bytes"
	"os"

	"github.com/pytrove/trove-classifiers/errors"
)

// CheckResult holds the result of an artifact freshness check.
type CheckResult struct {
	UpToDate bool
	// Missing is true when no artifact exists at the checked path yet.
	Missing bool
	// Added lists lines present in the fresh artifact but not on disk.
	Added []string
	// Removed lists lines on disk that are no longer generated.
	Removed []string
}

// Check compares freshly generated artifact bytes against the artifact
// committed at path. A byte-for-byte match means up to date; anything else is
// stale and the per-line differences are reported. Surrounding automation
// treats "no diff" as a no-op, so Check never modifies anything.
func Check(path string, fresh []byte) (*CheckResult, error) {
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &CheckResult{Missing: true}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading existing artifact %s", path)
	}

	if bytes.Equal(existing, fresh) {
		return &CheckResult{UpToDate: true}, nil
	}

	added, removed := diffLines(existing, fresh)
	return &CheckResult{Added: added, Removed: removed}, nil
}

// diffLines reports which lines changed between two artifacts. Every member
// of the generated enumeration is a unique single line, so a set comparison
// is an exact classifier-level diff; no LCS machinery needed.
func diffLines(existing, fresh []byte) (added, removed []string) {
	existingSet := lineSet(existing)
	freshSet := lineSet(fresh)

	for _, line := range lines(fresh) {
		if _, ok := existingSet[line]; !ok {
			added = append(added, line)
		}
	}
	for _, line := range lines(existing) {
		if _, ok := freshSet[line]; !ok {
			removed = append(removed, line)
		}
	}
	return added, removed
}

func lines(content []byte) []string {
	var out []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		out = append(out, scanner.Text())
	}
	return out
}

func lineSet(content []byte) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range lines(content) {
		set[line] = struct{}{}
	}
	return set
}
