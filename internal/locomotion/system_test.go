package locomotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryBeginGrantsWhenIdle(t *testing.T) {
	s := NewSystem()
	a := "providerA"

	assert.True(t, s.TryBegin(a))
	assert.True(t, s.Busy())
}

func TestTryBeginDeniesSecondOwner(t *testing.T) {
	s := NewSystem()
	a, b := "providerA", "providerB"

	assert.True(t, s.TryBegin(a))
	assert.False(t, s.TryBegin(b), "second provider must be denied while first holds the grant")
}

func TestTryBeginReentrant(t *testing.T) {
	s := NewSystem()
	a := "providerA"

	assert.True(t, s.TryBegin(a))
	assert.True(t, s.TryBegin(a), "current owner may re-acquire")
}

func TestEndReleases(t *testing.T) {
	s := NewSystem()
	a, b := "providerA", "providerB"

	assert.True(t, s.TryBegin(a))
	s.End(a)
	assert.False(t, s.Busy())
	assert.True(t, s.TryBegin(b), "grant must be available after release")
}

func TestEndIgnoresNonOwner(t *testing.T) {
	s := NewSystem()
	a, b := "providerA", "providerB"

	assert.True(t, s.TryBegin(a))
	s.End(b)
	assert.True(t, s.Busy(), "non-owner End must not release the grant")
}

func TestTryBeginNilOwner(t *testing.T) {
	s := NewSystem()
	assert.False(t, s.TryBegin(nil))
	assert.False(t, s.Busy())
}
