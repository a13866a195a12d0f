package classifiergen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pytrove/trove-classifiers/errors"
)

// parseArtifact parses generated output as Go source and extracts the version
// constant and enumeration members in declaration order. Failing to parse
// means the artifact is not valid Go, which is itself a test failure.
func parseArtifact(t *testing.T, data []byte) (version string, members []Member) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "classifiers.go", data, parser.ParseComments)
	require.NoError(t, err, "artifact must be valid Go source")
	require.Equal(t, OutputPackage, file.Name.Name)

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			require.Len(t, vs.Names, 1)
			require.Len(t, vs.Values, 1)

			lit, ok := vs.Values[0].(*ast.BasicLit)
			require.True(t, ok)
			value, err := strconv.Unquote(lit.Value)
			require.NoError(t, err)

			if vs.Names[0].Name == "PypaVersion" {
				version = value
				continue
			}
			members = append(members, Member{Name: vs.Names[0].Name, Value: value})
		}
	}
	return version, members
}

func TestGenerateScenario(t *testing.T) {
	snap := &Snapshot{
		Version: "2024.1.1",
		Classifiers: []string{
			"Topic :: Software Development",
			"License :: OSI Approved :: MIT License",
		},
	}

	data, err := Generate(snap)
	require.NoError(t, err)

	version, members := parseArtifact(t, data)
	assert.Equal(t, "2024.1.1", version)

	require.Len(t, members, 2)
	assert.Equal(t, Member{
		Name:  "LICENSE_OSI_APPROVED_MIT_LICENSE",
		Value: "License :: OSI Approved :: MIT License",
	}, members[0])
	assert.Equal(t, Member{
		Name:  "TOPIC_SOFTWARE_DEVELOPMENT",
		Value: "Topic :: Software Development",
	}, members[1])
}

func TestGenerateHeader(t *testing.T) {
	data, err := Generate(&Snapshot{Version: "2024.1.1", Classifiers: []string{"Typing :: Typed"}})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data),
		"// Code generated by classifiergen. DO NOT EDIT.\n"))
}

func TestGenerateDeterministic(t *testing.T) {
	classifiers := []string{
		"Topic :: Utilities",
		"Development Status :: 4 - Beta",
		"License :: OSI Approved :: MIT License",
		"Programming Language :: Python :: 3",
	}

	forward := &Snapshot{Version: "2024.1.1", Classifiers: classifiers}

	reversed := make([]string, len(classifiers))
	for i, c := range classifiers {
		reversed[len(classifiers)-1-i] = c
	}
	backward := &Snapshot{Version: "2024.1.1", Classifiers: reversed}

	first, err := Generate(forward)
	require.NoError(t, err)
	second, err := Generate(forward)
	require.NoError(t, err)
	third, err := Generate(backward)
	require.NoError(t, err)

	// Byte-identical regardless of run count or upstream iteration order
	assert.Equal(t, first, second)
	assert.Equal(t, first, third)
}

func TestGenerateBijectionAndSortOrder(t *testing.T) {
	snap, err := FileSource{Path: "testdata/trove_classifiers.json"}.Fetch()
	require.NoError(t, err)

	data, err := Generate(snap)
	require.NoError(t, err)

	_, members := parseArtifact(t, data)
	require.Len(t, members, len(snap.Classifiers))

	names := make(map[string]struct{}, len(members))
	values := make([]string, 0, len(members))
	for _, m := range members {
		_, dup := names[m.Name]
		assert.False(t, dup, "duplicate identifier %s", m.Name)
		names[m.Name] = struct{}{}
		values = append(values, m.Value)
	}

	// Members in ascending byte order of the classifier string
	assert.True(t, sort.StringsAreSorted(values))

	// Every input classifier appears exactly once
	want := make([]string, len(snap.Classifiers))
	copy(want, snap.Classifiers)
	sort.Strings(want)
	assert.Equal(t, want, values)
}

func TestGenerateCollisionRoundTrip(t *testing.T) {
	snap := &Snapshot{
		Version: "2024.1.1",
		Classifiers: []string{
			"Programming Language :: C++",
			"Programming Language :: C",
			"Programming Language :: C#",
		},
	}

	data, err := Generate(snap)
	require.NoError(t, err)

	_, members := parseArtifact(t, data)
	require.Len(t, members, 3)

	byName := make(map[string]string, len(members))
	for _, m := range members {
		byName[m.Name] = m.Value
	}

	assert.Equal(t, "Programming Language :: C", byName["PROGRAMMING_LANGUAGE_C"])
	assert.Equal(t, "Programming Language :: C#", byName["PROGRAMMING_LANGUAGE_C_2"])
	assert.Equal(t, "Programming Language :: C++", byName["PROGRAMMING_LANGUAGE_C_3"])
}

func TestGenerateVersionPropagation(t *testing.T) {
	snap := &Snapshot{Version: "2024.10.21.16", Classifiers: []string{"Typing :: Typed"}}

	data, err := Generate(snap)
	require.NoError(t, err)

	version, _ := parseArtifact(t, data)
	assert.Equal(t, "2024.10.21.16", version)
}

func TestGenerateRejectsMalformedSnapshot(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
	}{
		{"missing version", &Snapshot{Classifiers: []string{"Typing :: Typed"}}},
		{"blank version", &Snapshot{Version: "   ", Classifiers: []string{"Typing :: Typed"}}},
		{"empty list", &Snapshot{Version: "2024.1.1"}},
		{"empty classifier", &Snapshot{Version: "2024.1.1", Classifiers: []string{""}}},
		{"duplicate classifier", &Snapshot{
			Version:     "2024.1.1",
			Classifiers: []string{"Typing :: Typed", "Typing :: Typed"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Generate(tt.snap)
			require.Error(t, err)
			assert.True(t, errors.IsMalformedSource(err))
			assert.Nil(t, data)
		})
	}
}
