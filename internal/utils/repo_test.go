package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFullName(t *testing.T) {
	owner, name, err := SplitFullName("octo/hello-world")
	require.NoError(t, err)
	assert.Equal(t, "octo", owner)
	assert.Equal(t, "hello-world", name)

	for _, invalid := range []string{"", "octo", "octo/", "/repo", "a/b/c"} {
		_, _, err := SplitFullName(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestBranchFromRef(t *testing.T) {
	assert.Equal(t, "main", BranchFromRef("refs/heads/main"))
	assert.Equal(t, "feature/refs/heads/x", BranchFromRef("refs/heads/feature/refs/heads/x"))
	assert.Equal(t, "refs/tags/v1.0.0", BranchFromRef("refs/tags/v1.0.0"))
}
