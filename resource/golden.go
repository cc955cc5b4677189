package resource

import (
	"flag"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// goldenUpdate reports whether golden files should be rewritten. The package
// is built for test binaries, where updates are requested with
// `go test -update`. A host binary that already defines an update flag keeps
// its own definition: a boolean value is honored, anything else leaves golden
// rewriting off.
var goldenUpdate = updateFlag()

func updateFlag() func() bool {
	if registered := flag.Lookup("update"); registered != nil {
		return func() bool {
			getter, ok := registered.Value.(flag.Getter)
			if !ok {
				return false
			}
			enabled, ok := getter.Get().(bool)
			return ok && enabled
		}
	}
	value := flag.Bool("update", false, "update golden files")
	return func() bool { return *value }
}

// Golden compares got with the named golden resource, rewriting the golden
// file first when the -update flag is set. The name resolves through the
// Helper's reader, so golden files obey the same anchor rules as any other
// resource.
func (h *Helper) Golden(name string, got []byte) {
	h.t.Helper()
	if goldenUpdate() {
		location, err := h.reader.resolve(name)
		require.NoError(h.t, err, "cannot resolve golden %s", name)
		require.NoError(h.t, h.reader.fs.MkdirAll(filepath.Dir(location), 0o755), "cannot create golden dir for %s", name)
		require.NoError(h.t, afero.WriteFile(h.reader.fs, location, got, 0o644), "cannot update golden %s", name)
	}
	want := h.Bytes(name)
	require.Equal(h.t, string(want), string(got), "golden mismatch for %s", name)
}

// GoldenString is Golden for string content.
func (h *Helper) GoldenString(name, got string) {
	h.t.Helper()
	h.Golden(name, []byte(got))
}
