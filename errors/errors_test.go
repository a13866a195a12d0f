package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrap(ErrSourceUnavailable, "running python3")

	assert.Contains(t, wrapped.Error(), "running python3")
	assert.True(t, Is(wrapped, ErrSourceUnavailable))
	assert.False(t, Is(wrapped, ErrMalformedSource))
}

func TestWrapfPreservesSentinel(t *testing.T) {
	wrapped := Wrapf(ErrWriteFailed, "writing %s", "classifiers.go")

	assert.Contains(t, wrapped.Error(), "writing classifiers.go")
	assert.True(t, Is(wrapped, ErrWriteFailed))
}

func TestTaxonomyIsDisjoint(t *testing.T) {
	sentinels := []error{
		ErrSourceUnavailable,
		ErrMalformedSource,
		ErrCollisionUnresolvable,
		ErrWriteFailed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				assert.True(t, Is(a, b))
				continue
			}
			assert.False(t, Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsSourceUnavailable(Wrap(ErrSourceUnavailable, "ctx")))
	assert.True(t, IsMalformedSource(Wrap(ErrMalformedSource, "ctx")))
	assert.True(t, IsWriteFailed(Wrap(ErrWriteFailed, "ctx")))

	assert.False(t, IsSourceUnavailable(nil))
	assert.False(t, IsMalformedSource(New("other")))
	assert.False(t, IsWriteFailed(ErrSourceUnavailable))
}
