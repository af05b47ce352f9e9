package fieldpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/0xalexb/fieldpath"
)

func TestVersion_DefaultValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dev", fieldpath.Version)
	require.Equal(t, "unknown", fieldpath.CompiledAt)
}
