// Package testutil holds test doubles shared by the check packages.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vertti/fdpath/pkg/fdpath"
)

// MockResolver is a test double for fdpath.Resolver.
type MockResolver struct {
	ResolveFunc func(h fdpath.Handle) (string, error)
	Calls       []fdpath.Handle
}

func (m *MockResolver) Resolve(h fdpath.Handle) (string, error) {
	m.Calls = append(m.Calls, h)
	if m.ResolveFunc == nil {
		return "", &fdpath.LookupError{Op: "mock", Handle: h, Kind: fdpath.KindUnsupported}
	}
	return m.ResolveFunc(h)
}

// ResolveTo returns a resolver that always reports path.
func ResolveTo(path string) *MockResolver {
	return &MockResolver{ResolveFunc: func(fdpath.Handle) (string, error) { return path, nil }}
}

// ResolveErr returns a resolver that always fails with err.
func ResolveErr(err error) *MockResolver {
	return &MockResolver{ResolveFunc: func(fdpath.Handle) (string, error) { return "", err }}
}

// OpenTemp creates name in a fresh temp dir with content and returns it open
// for reading. The file is closed when the test ends.
func OpenTemp(t *testing.T, name, content string) (*os.File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	f, err := os.Open(path) //nolint:gosec // test file under t.TempDir
	if err != nil {
		t.Fatalf("failed to open temp file: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f, path
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
