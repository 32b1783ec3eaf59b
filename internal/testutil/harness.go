// Package testutil provides the shared harness for integration tests:
// temp manifest trees, in-process CLI invocation, and a thread-safe log
// capture buffer.
package testutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"bootplan/internal/cli"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteManifestTree materializes the given relative-path → content map
// under a fresh temp directory and returns its root. Nested paths create
// their directories.
func WriteManifestTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// CLIResult holds the outcome of one in-process CLI invocation.
type CLIResult struct {
	Stdout   string
	Stderr   string
	Err      error
	ExitCode int
}

// RunCLI drives the full command tree in-process, the way main does, and
// captures stdout, stderr, and the would-be process exit code.
func RunCLI(t *testing.T, args ...string) *CLIResult {
	t.Helper()

	var outBuf, errBuf SafeBuffer
	root := cli.NewRootCmd("test", &outBuf, &errBuf)
	root.SetArgs(args)

	err := root.Execute()

	code := 0
	if err != nil {
		code = 1
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
	}

	return &CLIResult{
		Stdout:   outBuf.String(),
		Stderr:   errBuf.String(),
		Err:      err,
		ExitCode: code,
	}
}
