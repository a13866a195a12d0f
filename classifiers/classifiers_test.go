package classifiers_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pytrove/trove-classifiers/classifiergen"
	"github.com/pytrove/trove-classifiers/classifiers"
)

func TestVersionIsCalVer(t *testing.T) {
	// pypa/trove-classifiers releases are calendar-versioned (2024.10.16,
	// occasionally with a fourth component)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}(\.\d+){2,3}$`), classifiers.PypaVersion)
}

func TestConstantsRoundTrip(t *testing.T) {
	assert.Equal(t, "Development Status :: 1 - Planning",
		string(classifiers.DEVELOPMENT_STATUS_1_PLANNING))
	assert.Equal(t, "License :: OSI Approved :: MIT License",
		string(classifiers.LICENSE_OSI_APPROVED_MIT_LICENSE))
	assert.Equal(t, "Topic :: Software Development :: Code Generators",
		string(classifiers.TOPIC_SOFTWARE_DEVELOPMENT_CODE_GENERATORS))
}

func TestCollisionSuffixesResolveDistinctClassifiers(t *testing.T) {
	assert.Equal(t, "Programming Language :: C",
		string(classifiers.PROGRAMMING_LANGUAGE_C))
	assert.Equal(t, "Programming Language :: C#",
		string(classifiers.PROGRAMMING_LANGUAGE_C_2))
	assert.Equal(t, "Programming Language :: C++",
		string(classifiers.PROGRAMMING_LANGUAGE_C_3))
}

// TestSnapshotIsComplete guards against committing a truncated export: the
// snapshot must carry the entire upstream set for PypaVersion, including the
// deep version families, not just the common top-level classifiers.
func TestSnapshotIsComplete(t *testing.T) {
	source := classifiergen.FileSource{
		Path: "../classifiergen/testdata/trove_classifiers.json",
	}
	snap, err := source.Fetch()
	require.NoError(t, err)

	// Full member count of the 2024.10.16 release.
	assert.Len(t, snap.Classifiers, 865)

	assert.Equal(t, "Environment :: GPU :: NVIDIA CUDA :: 12 :: 12.5",
		string(classifiers.ENVIRONMENT_GPU_NVIDIA_CUDA_12_12_5))
	assert.Equal(t, "Framework :: Django :: 5.1",
		string(classifiers.FRAMEWORK_DJANGO_5_1))
	assert.Equal(t, "Operating System :: Microsoft :: Windows :: Windows 11",
		string(classifiers.OPERATING_SYSTEM_MICROSOFT_WINDOWS_WINDOWS_11))
	assert.Equal(t, "Programming Language :: Python :: 3.14",
		string(classifiers.PROGRAMMING_LANGUAGE_PYTHON_3_14))
}

// TestSnapshotIsCurrent regenerates the artifact from the checked-in upstream
// snapshot and requires a byte-for-byte match with classifiers.go. This is
// the same comparison `classifiergen check` performs in CI.
func TestSnapshotIsCurrent(t *testing.T) {
	source := classifiergen.FileSource{
		Path: "../classifiergen/testdata/trove_classifiers.json",
	}
	snap, err := source.Fetch()
	require.NoError(t, err)
	require.Equal(t, classifiers.PypaVersion, snap.Version)

	fresh, err := classifiergen.Generate(snap)
	require.NoError(t, err)

	committed, err := os.ReadFile("classifiers.go")
	require.NoError(t, err)

	assert.Equal(t, string(committed), string(fresh),
		"classifiers.go is stale; run go generate ./classifiers")
}
