package classifiergen

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"

	"github.com/pytrove/trove-classifiers/errors"
	"github.com/pytrove/trove-classifiers/logger"
)

// Source obtains the current classifier set and upstream version from the
// canonical data source. Fetch is a pure read with no side effects.
type Source interface {
	Fetch() (*Snapshot, error)
}

// DefaultInterpreter is the Python interpreter used when none is configured.
const DefaultInterpreter = "python3"

// exportScript dumps the installed trove_classifiers distribution as JSON on
// stdout. The classifier list and its version both come from the installed
// package; pinning a version means installing that version before running.
const exportScript = `import importlib.metadata, json, trove_classifiers
print(json.dumps({
    "version": importlib.metadata.distribution("trove_classifiers").version,
    "classifiers": list(trove_classifiers.sorted_classifiers),
}))`

// PythonSource reads the classifier data from the trove_classifiers Python
// distribution installed in the interpreter's environment. It is the thin
// cross-ecosystem shim: one subprocess, JSON on stdout, nothing else.
type PythonSource struct {
	// Interpreter is the Python executable to invoke.
	// Empty means DefaultInterpreter.
	Interpreter string
}

// Fetch runs the export script and decodes its output.
func (s PythonSource) Fetch() (*Snapshot, error) {
	interpreter := s.Interpreter
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}

	if _, err := exec.LookPath(interpreter); err != nil {
		return nil, errors.Wrapf(errors.ErrSourceUnavailable,
			"python interpreter %q not found in PATH", interpreter)
	}

	cmd := exec.Command(interpreter, "-c", exportScript)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugw("Fetching classifier data", "interpreter", interpreter)

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if strings.Contains(detail, "ModuleNotFoundError") {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrSourceUnavailable,
					"trove_classifiers is not importable by %q", interpreter),
				"install it with: pip install trove-classifiers")
		}
		return nil, errors.Wrapf(errors.ErrSourceUnavailable,
			"%q exited with an error: %v: %s", interpreter, err, detail)
	}

	snap, err := decodeSnapshot(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	logger.Infow("Fetched classifier data",
		"interpreter", interpreter,
		"version", snap.Version,
		"classifiers", len(snap.Classifiers))

	return snap, nil
}

// FileSource reads a previously exported snapshot from a JSON file. Used for
// offline generation and test fixtures; the JSON shape matches PythonSource's
// export script.
type FileSource struct {
	Path string
}

// Fetch reads and decodes the snapshot file.
func (s FileSource) Fetch() (*Snapshot, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSourceUnavailable,
			"reading snapshot file %s: %v", s.Path, err)
	}

	snap, err := decodeSnapshot(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot file %s", s.Path)
	}

	return snap, nil
}

// decodeSnapshot parses the JSON export and validates its shape.
func decodeSnapshot(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, errors.Wrapf(errors.ErrMalformedSource, "decoding snapshot JSON: %v", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}
