package fdpath_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vertti/fdpath/pkg/check"
	"github.com/vertti/fdpath/pkg/fdcheck"
	"github.com/vertti/fdpath/pkg/fdpath"
)

// Integration tests run the real resolver against real descriptors.
// Unit tests in each package cover edge cases with mocks.

func skipUnsupported(t *testing.T) {
	t.Helper()
	if !fdpath.Supported() {
		t.Skip("no path lookup on this platform")
	}
}

func TestIntegration_TempFile(t *testing.T) {
	skipUnsupported(t)

	path := filepath.Join(t.TempDir(), "example.txt")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer func() { _ = f.Close() }()

	c := fdcheck.Check{
		Handle:     f.Fd(),
		SameFileAs: path,
		Resolver:   fdpath.OSResolver{},
		FS:         &fdcheck.RealFileSystem{},
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want OK (details: %v)", result.Status, result.Details)
	}
	if result.Path == "" {
		t.Error("Path is empty for a successful lookup")
	}
}

func TestIntegration_RelativeOpen(t *testing.T) {
	skipUnsupported(t)

	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile("relative.txt", []byte("x"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	f, err := os.Open("relative.txt")
	if err != nil {
		t.Fatalf("failed to open file: %v", err)
	}
	defer func() { _ = f.Close() }()

	got, err := fdpath.FromFile(f)
	if err != nil {
		t.Fatalf("FromFile() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("FromFile() = %q, want an absolute path", got)
	}

	want, _ := os.Stat(filepath.Join(dir, "relative.txt"))
	info, err := os.Stat(got)
	if err != nil || !os.SameFile(want, info) {
		t.Errorf("FromFile() = %q, not the same file as relative.txt (err: %v)", got, err)
	}
}

func TestIntegration_Pipe(t *testing.T) {
	skipUnsupported(t)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()
	defer func() { _ = w.Close() }()

	c := fdcheck.Check{Handle: r.Fd(), Resolver: fdpath.OSResolver{}}
	result := c.Run()

	if result.OK() {
		t.Fatalf("pipe resolved to %q, want failure", result.Path)
	}
	if !errors.Is(result.Err, fdpath.ErrUnsupported) && !errors.Is(result.Err, fdpath.ErrNotFound) {
		t.Errorf("Err = %v, want ErrUnsupported or ErrNotFound", result.Err)
	}
}

func TestIntegration_ClosedFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "closed-*.txt")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	_ = f.Close()

	got, err := fdpath.FromFile(f)
	if got != "" {
		t.Errorf("FromFile(closed) = %q, want empty", got)
	}
	if !errors.Is(err, fdpath.ErrInvalidHandle) {
		t.Errorf("FromFile(closed) error = %v, want ErrInvalidHandle", err)
	}
}

func TestIntegration_Stdin(t *testing.T) {
	c := fdcheck.Check{Handle: os.Stdin.Fd(), Label: "stdin", Resolver: fdpath.OSResolver{}}

	result := c.Run()

	if result.OK() && result.Path == "" {
		t.Error("stdin resolved to an empty path")
	}
	if !result.OK() {
		var lerr *fdpath.LookupError
		if !errors.As(result.Err, &lerr) {
			t.Errorf("Err = %v, want *fdpath.LookupError", result.Err)
		}
	}
}
