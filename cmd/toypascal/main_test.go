package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI invokes run() with args, a source file holding source (or "-" to
// read from stdin, wired to the given stdin string), and returns its exit
// code plus whatever it wrote to stdout/stderr.
func runCLI(t *testing.T, args []string, stdin string) (exitCode int, stdout, stderr string) {
	t.Helper()

	origArgs, origStdin, origStdout, origStderr := os.Args, os.Stdin, os.Stdout, os.Stderr
	defer func() { os.Args, os.Stdin, os.Stdout, os.Stderr = origArgs, origStdin, origStdout, origStderr }()

	os.Args = append([]string{"toypascal"}, args...)

	if stdin != "" {
		inR, inW, err := os.Pipe()
		require.NoError(t, err)
		_, err = inW.WriteString(stdin)
		require.NoError(t, err)
		inW.Close()
		os.Stdin = inR
	}

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = outW
	errR, errW, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = errW

	exitCode = run()

	outW.Close()
	errW.Close()
	outBytes := make([]byte, 65536)
	n, _ := outR.Read(outBytes)
	stdout = string(outBytes[:n])
	errBytes := make([]byte, 65536)
	n, _ = errR.Read(errBytes)
	stderr = string(errBytes[:n])
	return exitCode, stdout, stderr
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "*.toy")
	require.NoError(t, err)
	_, err = f.WriteString(source)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func TestCLIRunsSourceFileAndPrintsOutput(t *testing.T) {
	path := writeSource(t, "VAR a := 10; OUTPUT a;")
	code, stdout, _ := runCLI(t, []string{path}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a=10\n", stdout)
}

func TestCLIReadsSourceFromStdinByDefault(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "VAR a := 5; OUTPUT a;")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a=5\n", stdout)
}

func TestCLIExitsNonzeroOnLexicalError(t *testing.T) {
	path := writeSource(t, "VAR a := 10 # ;")
	code, _, stderr := runCLI(t, []string{path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ERROR:")
}

func TestCLIExitsNonzeroOnParseError(t *testing.T) {
	path := writeSource(t, "VAR := 10;")
	code, _, stderr := runCLI(t, []string{path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ERROR:")
}

func TestCLIExitsNonzeroOnRuntimeError(t *testing.T) {
	path := writeSource(t, "VAR a := 1; VAR b := 0; VAR c := a / b; OUTPUT c;")
	code, _, stderr := runCLI(t, []string{path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ERROR:")
}

func TestCLIQuietSuppressesErrorLine(t *testing.T) {
	path := writeSource(t, "VAR := 10;")
	code, _, stderr := runCLI(t, []string{"-quiet", path}, "")
	assert.Equal(t, 1, code)
	assert.Empty(t, stderr)
}

func TestCLIInputFlagReadsFromFile(t *testing.T) {
	path := writeSource(t, "VAR a; INPUT a; OUTPUT a;")
	inputPath := writeSource(t, "99")
	code, stdout, _ := runCLI(t, []string{"-input", inputPath, path}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "a=99\n", stdout)
}

func TestCLIDumpOpsPrintsProgramBeforeRunning(t *testing.T) {
	path := writeSource(t, "VAR a := 1; OUTPUT a;")
	code, stdout, _ := runCLI(t, []string{"-dump-ops", path}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "a=1\n")
	assert.Contains(t, stdout, "1")
}

func TestCLIDumpVarsPrintsFinalVariableTable(t *testing.T) {
	path := writeSource(t, "VAR a := 7; OUTPUT a;")
	code, stdout, _ := runCLI(t, []string{"-dump-vars", path}, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "a = 7")
}

func TestCLITimeoutAbortsRunawayLoop(t *testing.T) {
	path := writeSource(t, "VAR a := 0; WHILE (a == 0) DO { a := 0; } ;")
	code, _, stderr := runCLI(t, []string{"-timeout", "50ms", path}, "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "ERROR:")
}
