package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	logPath := writeLogFixture(t, home)

	stdout, stderr, err := runObdlog(t, binaryPath, home, "parse", logPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Session Report")

	_, stderr, err = runObdlog(t, binaryPath, home, "formula", "add", "rpm", "[B2:B3] / 4", "--pid", "010C", "--unit", "rpm")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runObdlog(t, binaryPath, home, "formula", "run", logPath)
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "1726 rpm")

	_, stderr, err = runObdlog(t, binaryPath, home, "eval", logPath, "B0 / 0")
	require.Error(t, err)
	assert.Contains(t, stderr, "arithmetic error")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "obdlog-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/obdlog")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build obdlog binary: %s", string(output))
	return binaryPath
}

func runObdlog(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeLogFixture(t *testing.T, home string) string {
	t.Helper()

	transcript := `ATZ
>ATSP0
OK

>0100
4100BE3FA813
>010C
410C1AF8
>010D
410D32
`

	path := filepath.Join(home, "drive.log")
	require.NoError(t, os.WriteFile(path, []byte(transcript), 0o600))
	return path
}
