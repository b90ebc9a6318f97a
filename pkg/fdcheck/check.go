package fdcheck

import (
	"errors"
	"fmt"
	"os"

	"github.com/vertti/fdpath/pkg/check"
	"github.com/vertti/fdpath/pkg/fdpath"
)

// Check resolves an open descriptor and verifies the reported path.
type Check struct {
	Handle       fdpath.Handle   // descriptor or handle to resolve
	Label        string          // display name; defaults to "fd: <handle>"
	ExpectPath   string          // --expect: exact path string
	SameFileAs   string          // --same-file: path that must be the same file
	Match        string          // --match: regex pattern for the path
	AllowDeleted bool            // --allow-deleted: accept an unlinked file
	Resolver     fdpath.Resolver // injected for testing
	FS           FileSystem      // injected for testing
}

// Run executes the descriptor check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: c.name(),
	}

	re, err := check.CompileRegex(c.Match)
	if err != nil {
		return result.Failf("invalid regex pattern: %v", err)
	}

	resolver := c.Resolver
	if resolver == nil {
		resolver = fdpath.OSResolver{}
	}

	path, err := resolver.Resolve(c.Handle)
	if err != nil {
		return result.Fail(describe(err), err)
	}
	result.SetPath(path)

	deleted := fdpath.Deleted(path)
	if deleted && !c.AllowDeleted {
		return result.Fail("file has been deleted", fmt.Errorf("%s: file has been deleted", path))
	}

	if c.ExpectPath != "" && path != c.ExpectPath {
		return result.Failf("path %q does not equal %q", path, c.ExpectPath)
	}

	if re != nil && !re.MatchString(path) {
		return result.Failf("path %q does not match pattern %q", path, c.Match)
	}

	if c.SameFileAs != "" {
		if deleted {
			return result.Failf("cannot compare a deleted file with %s", c.SameFileAs)
		}
		if err := c.checkSameFile(path, &result); err != nil {
			return result
		}
	}

	result.Status = check.StatusOK
	return result
}

func (c *Check) name() string {
	if c.Label != "" {
		return c.Label
	}
	return fmt.Sprintf("fd: %d", c.Handle)
}

func (c *Check) checkSameFile(path string, result *check.Result) error {
	fsys := c.FS
	if fsys == nil {
		fsys = &RealFileSystem{}
	}

	got, err := fsys.Stat(path)
	if err != nil {
		result.Fail(statDetail(path, err), err)
		return err
	}
	want, err := fsys.Stat(c.SameFileAs)
	if err != nil {
		result.Fail(statDetail(c.SameFileAs, err), err)
		return err
	}

	if !fsys.SameFile(got, want) {
		err := fmt.Errorf("%s is not the same file as %s", path, c.SameFileAs)
		result.Fail("not the same file as "+c.SameFileAs, err)
		return err
	}
	result.AddDetailf("same file: %s", c.SameFileAs)
	return nil
}

func statDetail(path string, err error) string {
	switch {
	case os.IsNotExist(err):
		return fmt.Sprintf("%s: not found", path)
	case os.IsPermission(err):
		return fmt.Sprintf("%s: permission denied", path)
	default:
		return fmt.Sprintf("%s: stat failed: %v", path, err)
	}
}

// describe turns a lookup failure into a detail line.
func describe(err error) string {
	switch {
	case errors.Is(err, fdpath.ErrInvalidHandle):
		return "invalid handle"
	case errors.Is(err, fdpath.ErrNotFound):
		return "no path associated with handle"
	case errors.Is(err, fdpath.ErrUnsupported):
		return "path lookup not supported for this handle"
	}
	if code, ok := fdpath.Code(err); ok {
		return fmt.Sprintf("os error %d: %v", code, err)
	}
	return fmt.Sprintf("lookup failed: %v", err)
}
