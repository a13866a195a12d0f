package classifiergen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveName(t *testing.T) {
	tests := []struct {
		classifier string
		want       string
	}{
		{"License :: OSI Approved :: MIT License", "LICENSE_OSI_APPROVED_MIT_LICENSE"},
		{"Topic :: Software Development", "TOPIC_SOFTWARE_DEVELOPMENT"},
		{"Development Status :: 5 - Production/Stable", "DEVELOPMENT_STATUS_5_PRODUCTION_STABLE"},
		{"Programming Language :: C", "PROGRAMMING_LANGUAGE_C"},
		// Stripped characters collapse into the same candidate as plain C
		{"Programming Language :: C#", "PROGRAMMING_LANGUAGE_C"},
		{"Programming Language :: C++", "PROGRAMMING_LANGUAGE_C"},
		{"Environment :: Handhelds/PDA's", "ENVIRONMENT_HANDHELDS_PDA_S"},
		{"Framework :: Django :: 4.2", "FRAMEWORK_DJANGO_4_2"},
		// No leading or trailing underscores, no runs
		{"  odd   spacing  ", "ODD_SPACING"},
		{"License :: OSI Approved :: GNU General Public License v3 or later (GPLv3+)",
			"LICENSE_OSI_APPROVED_GNU_GENERAL_PUBLIC_LICENSE_V3_OR_LATER_GPLV3"},
		// Would start with a digit: fixed marker prefix
		{"3D Modeling", "C_3D_MODELING"},
		// Degenerate input still yields a legal identifier
		{"::", "C_"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveName(tt.classifier), "classifier %q", tt.classifier)
	}
}

func TestAssignNamesUnique(t *testing.T) {
	input := []string{
		"Programming Language :: C",
		"Programming Language :: C#",
		"Programming Language :: C++",
	}

	members, err := assignNames(input)
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.Equal(t, "PROGRAMMING_LANGUAGE_C", members[0].Name)
	assert.Equal(t, "PROGRAMMING_LANGUAGE_C_2", members[1].Name)
	assert.Equal(t, "PROGRAMMING_LANGUAGE_C_3", members[2].Name)

	assert.Equal(t, "Programming Language :: C", members[0].Value)
	assert.Equal(t, "Programming Language :: C#", members[1].Value)
	assert.Equal(t, "Programming Language :: C++", members[2].Value)
}

func TestAssignNamesSkipsNaturallyTakenSuffix(t *testing.T) {
	// "Foo 2" legitimately owns FOO_2, so the collision between "Foo" and
	// "Foo#" must resolve to FOO_3, not repoint FOO_2.
	input := []string{"Foo", "Foo 2", "Foo#"}

	members, err := assignNames(input)
	require.NoError(t, err)

	assert.Equal(t, "FOO", members[0].Name)
	assert.Equal(t, "FOO_2", members[1].Name)
	assert.Equal(t, "FOO_3", members[2].Name)
	assert.Equal(t, "Foo 2", members[1].Value)
	assert.Equal(t, "Foo#", members[2].Value)
}

func TestAssignNamesDeterministic(t *testing.T) {
	input := []string{"A", "A#", "A+", "B"}

	first, err := assignNames(input)
	require.NoError(t, err)
	second, err := assignNames(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
