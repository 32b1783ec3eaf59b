package error_handling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bootplan/internal/testutil"
)

func TestDiff_CleanExitsZero(t *testing.T) {
	manifest := map[string]string{"services.hcl": `service "api" { command = "serve" }`}
	oldDir := testutil.WriteManifestTree(t, manifest)
	newDir := testutil.WriteManifestTree(t, manifest)

	result := testutil.RunCLI(t, "diff", oldDir, newDir)

	require.NoError(t, result.Err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Empty(t, result.Stdout)
}

func TestDiff_DriftExitsOne(t *testing.T) {
	oldDir := testutil.WriteManifestTree(t, map[string]string{
		"services.hcl": `service "api" { command = "serve" }`,
	})
	newDir := testutil.WriteManifestTree(t, map[string]string{
		"services.hcl": `
service "api" { command = "serve --v2" }
service "cache" {}
`,
	})

	result := testutil.RunCLI(t, "diff", oldDir, newDir)

	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Stdout, "~ api.command: serve -> serve --v2")
	assert.Contains(t, result.Stdout, "+ cache")
}

func TestDiff_LoadErrorExitsTwo(t *testing.T) {
	goodDir := testutil.WriteManifestTree(t, map[string]string{
		"services.hcl": `service "api" {}`,
	})
	badDir := testutil.WriteManifestTree(t, map[string]string{
		"services.hcl": `service "api" {`,
	})

	result := testutil.RunCLI(t, "diff", goodDir, badDir)

	assert.Equal(t, 2, result.ExitCode)
}

func TestDiff_RequiresExactlyTwoArguments(t *testing.T) {
	result := testutil.RunCLI(t, "diff", "only-one")

	require.Error(t, result.Err)
	assert.Equal(t, 1, result.ExitCode)
}
