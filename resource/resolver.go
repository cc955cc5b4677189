package resource

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Resolver maps a resource name to a location on the backing filesystem. The
// default implementation is DirResolver; tests that bundle fixtures in an
// unusual layout can inject their own mapping via WithResolver.
type Resolver interface {
	Resolve(name string) (string, error)
}

// DirResolver resolves names the way a classpath lookup would: a name that
// starts with a slash is an absolute resource path under Root (the leading
// slash stripped), any other name is joined to the Anchor directory.
type DirResolver struct {
	// Root anchors absolute names. Empty means the working directory, which
	// during `go test` is the package directory under test.
	Root string

	// Anchor anchors relative names, typically the directory of the test
	// file that constructed the Reader.
	Anchor string
}

// Resolve applies the resolution rule. The returned location is cleaned but
// not checked for existence; opening it is the caller's job.
func (r DirResolver) Resolve(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("resource name is empty")
	}
	if strings.HasPrefix(name, "/") {
		root := r.Root
		if root == "" {
			root = "."
		}
		return filepath.Clean(filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(name, "/")))), nil
	}
	if r.Anchor == "" {
		return "", fmt.Errorf("no anchor directory for relative resource name %q", name)
	}
	return filepath.Clean(filepath.Join(r.Anchor, filepath.FromSlash(name))), nil
}

// callerDir returns the directory of the source file skip frames above the
// caller of callerDir.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}
