package integration_test

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/bigfiles/internal/integration"
)

func TestRender(t *testing.T) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		t.Skipf("zsh not available: %v", err)
	}

	rendered, err := integration.Render()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rendered, "#!"), "missing shebang")
	assert.Contains(t, rendered, zsh)
	assert.Contains(t, rendered, "bigf()")
	assert.NotContains(t, rendered, "{{")

	// Paths must be recovered by column, not by field splitting, so that
	// selected paths containing spaces survive the round-trip.
	assert.Contains(t, rendered, "cut -c17-")
}
