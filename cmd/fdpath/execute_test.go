package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/vertti/fdpath/pkg/fdpath"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// openTempFd opens a temp file and returns its descriptor as a CLI argument.
func openTempFd(t *testing.T, name string) (string, string) {
	t.Helper()
	path := writeTempFile(t, name, "content")
	f, err := os.Open(path) //nolint:gosec // test file under t.TempDir
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return strconv.FormatUint(uint64(f.Fd()), 10), path
}

func skipUnsupported(t *testing.T) {
	t.Helper()
	if !fdpath.Supported() {
		t.Skip("no path lookup on this platform")
	}
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "fdpath")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "resolve")
	assert.Contains(t, output, "check")
}

func TestResolveCommand_Open(t *testing.T) {
	skipUnsupported(t)
	path := writeTempFile(t, "example.txt", "hello")

	output, err := executeCommand("resolve", "--open", path)
	require.NoError(t, err, output)
	assert.Contains(t, output, "[OK]")
	assert.Contains(t, output, "open: "+path)
	assert.Contains(t, output, "example.txt")
}

func TestResolveCommand_JSON(t *testing.T) {
	skipUnsupported(t)
	path := writeTempFile(t, "example.txt", "hello")

	output, err := executeCommand("resolve", "--json", "--open", path)
	require.NoError(t, err, output)
	require.True(t, gjson.Valid(output), output)

	assert.Equal(t, "OK", gjson.Get(output, "0.status").String())
	resolved := gjson.Get(output, "0.path").String()
	require.NotEmpty(t, resolved)

	want, err := os.Stat(path)
	require.NoError(t, err)
	got, err := os.Stat(resolved)
	require.NoError(t, err)
	assert.True(t, os.SameFile(want, got))
}

func TestResolveCommand_Descriptors(t *testing.T) {
	skipUnsupported(t)
	fd1, _ := openTempFd(t, "one.txt")
	fd2, _ := openTempFd(t, "two.txt")

	output, err := executeCommand("resolve", "--json", fd1, fd2)
	require.NoError(t, err, output)
	assert.Equal(t, int64(2), gjson.Get(output, "#").Int())
	assert.Contains(t, gjson.Get(output, "0.path").String(), "one.txt")
	assert.Contains(t, gjson.Get(output, "1.path").String(), "two.txt")
}

func TestResolveCommand_Stdin(t *testing.T) {
	output, err := executeCommand("resolve", "stdin")
	if err != nil {
		assert.ErrorIs(t, err, ErrCheckFailed)
	}
	assert.Contains(t, output, "fd: stdin")
}

func TestResolveCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no descriptor", []string{"resolve"}},
		{"not a number", []string{"resolve", "abc"}},
		{"negative", []string{"resolve", "-1"}},
		{"open missing file", []string{"resolve", "--open", "/nonexistent/fdpath/file.txt"}},
		{"closed descriptor", []string{"resolve", "2147483646"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestResolveCommand_OneFailureFailsAll(t *testing.T) {
	skipUnsupported(t)
	fd, _ := openTempFd(t, "good.txt")

	output, err := executeCommand("resolve", fd, "2147483646")
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, output, "[OK]")
	assert.Contains(t, output, "[FAIL]")
}

func TestCheckCommand(t *testing.T) {
	skipUnsupported(t)
	fd, path := openTempFd(t, "config.txt")
	other := writeTempFile(t, "other.txt", "other")

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"plain", []string{"check", fd}, false},
		{"same file", []string{"check", fd, "--same-file", path}, false},
		{"different file", []string{"check", fd, "--same-file", other}, true},
		{"match", []string{"check", fd, "--match", `config\.txt$`}, false},
		{"match fails", []string{"check", fd, "--match", `\.log$`}, true},
		{"invalid regex", []string{"check", fd, "--match", "("}, true},
		{"expect fails", []string{"check", fd, "--expect", other}, true},
		{"missing argument", []string{"check"}, true},
		{"too many arguments", []string{"check", fd, fd}, true},
		{"invalid descriptor", []string{"check", "nope"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(tt.args...)
			if tt.wantErr {
				assert.Error(t, err, output)
			} else {
				assert.NoError(t, err, output)
			}
		})
	}
}

func TestCheckCommand_ExpectExact(t *testing.T) {
	skipUnsupported(t)
	fd, _ := openTempFd(t, "exact.txt")

	output, err := executeCommand("check", "--json", fd)
	require.NoError(t, err, output)
	resolved := gjson.Get(output, "0.path").String()
	require.NotEmpty(t, resolved)

	output, err = executeCommand("check", fd, "--expect", resolved)
	assert.NoError(t, err, output)
}
