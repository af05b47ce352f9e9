package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() *Node {
	return NewHash(map[string]*Node{
		"offer": NewHash(map[string]*Node{
			"date": NewString("07.11.2019"),
		}),
		"clients": NewArray(
			NewHash(map[string]*Node{"name": NewString("first")}),
			NewHash(map[string]*Node{"name": NewString("second")}),
			NewString("third"),
		),
		"empty": NewNull(),
		"count": NewInt(3),
	})
}

func TestResolve_HashDescent(t *testing.T) {
	t.Parallel()

	got := Resolve(testTree(), []string{"offer", "date"})

	require.NotNil(t, got)

	str, ok := got.AsStr()
	require.True(t, ok)
	assert.Equal(t, "07.11.2019", str)
}

func TestResolve_ArrayIndex(t *testing.T) {
	t.Parallel()

	got := Resolve(testTree(), []string{"clients", "2"})

	require.NotNil(t, got)

	str, ok := got.AsStr()
	require.True(t, ok)
	assert.Equal(t, "third", str)
}

func TestResolve_MixedDescent(t *testing.T) {
	t.Parallel()

	got := Resolve(testTree(), []string{"clients", "1", "name"})

	require.NotNil(t, got)

	str, ok := got.AsStr()
	require.True(t, ok)
	assert.Equal(t, "second", str)
}

func TestResolve_NotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		segments []string
	}{
		{
			name:     "absent key",
			segments: []string{"missing"},
		},
		{
			name:     "absent nested key",
			segments: []string{"offer", "missing"},
		},
		{
			name:     "absence short-circuits recursion",
			segments: []string{"missing", "deeper", "still"},
		},
		{
			name:     "non-numeric array segment",
			segments: []string{"clients", "x"},
		},
		{
			name:     "negative array segment",
			segments: []string{"clients", "-1"},
		},
		{
			name:     "index out of bounds",
			segments: []string{"clients", "3"},
		},
		{
			name:     "path longer than data",
			segments: []string{"count", "deeper"},
		},
		{
			name:     "path into null",
			segments: []string{"empty", "deeper"},
		},
		{
			name:     "no segments",
			segments: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Nil(t, Resolve(testTree(), tt.segments))
		})
	}
}

func TestResolve_TerminalHashLookupReturnsNullChild(t *testing.T) {
	t.Parallel()

	// A key that is present with a null value resolves to the null node;
	// normalizing null to absent is the accessor's job, not the walker's.
	got := Resolve(testTree(), []string{"empty"})

	require.NotNil(t, got)
	assert.Equal(t, NullType, got.Type())
}

func TestResolve_ScalarRoot(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Resolve(NewString("scalar"), []string{"key"}))
	assert.Nil(t, Resolve(NewNull(), []string{"key"}))
	assert.Nil(t, Resolve(NewBadValue(), []string{"0"}))
}
