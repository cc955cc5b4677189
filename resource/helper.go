package resource

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding"
)

// testingT is the subset of *testing.T the Helper relies on.
type testingT interface {
	Helper()
	Cleanup(func())
	Errorf(format string, args ...any)
	FailNow()
}

// Helper binds a Reader to a test. Every method reports a lookup failure as
// an unrecoverable test failure carrying the resource name: a missing fixture
// means a broken test environment, not a condition to handle.
type Helper struct {
	t      testingT
	reader *Reader
}

// NewHelper returns a Helper whose relative names resolve against the calling
// test file's directory. Options override the anchor, filesystem, or default
// encoding the same way they do for New.
func NewHelper(t *testing.T, opts ...Option) *Helper {
	t.Helper()
	opts = append([]Option{WithAnchorOf(1)}, opts...)
	return &Helper{t: t, reader: New(opts...)}
}

// Reader exposes the error-returning layer underneath the Helper.
func (h *Helper) Reader() *Reader {
	return h.reader
}

// Bytes reads the whole resource, failing the test if it is unavailable.
func (h *Helper) Bytes(name string) []byte {
	h.t.Helper()
	data, err := h.reader.Bytes(name)
	require.NoError(h.t, err, "cannot read resource %s", name)
	return data
}

// String reads the whole resource decoded with the default encoding.
func (h *Helper) String(name string) string {
	h.t.Helper()
	text, err := h.reader.String(name)
	require.NoError(h.t, err, "cannot read resource %s", name)
	return text
}

// StringEncoding reads the whole resource decoded with the given encoding.
func (h *Helper) StringEncoding(name string, enc encoding.Encoding) string {
	h.t.Helper()
	text, err := h.reader.StringEncoding(name, enc)
	require.NoError(h.t, err, "cannot read resource %s", name)
	return text
}

// Open returns a byte stream for the resource. The caller should close it;
// a cleanup backstop closes it at the end of the test regardless.
func (h *Helper) Open(name string) io.ReadCloser {
	h.t.Helper()
	f, err := h.reader.Open(name)
	require.NoError(h.t, err, "cannot open resource %s", name)
	h.t.Cleanup(func() { _ = f.Close() })
	return f
}

// Lines opens the resource as a line sequence. The caller should close it;
// a cleanup backstop closes it at the end of the test regardless.
func (h *Helper) Lines(name string) *Lines {
	h.t.Helper()
	lines, err := h.reader.Lines(name)
	require.NoError(h.t, err, "cannot read resource %s", name)
	h.t.Cleanup(func() { _ = lines.Close() })
	return lines
}

// YAML decodes a YAML resource into out.
func (h *Helper) YAML(name string, out any) {
	h.t.Helper()
	require.NoError(h.t, h.reader.YAML(name, out), "cannot decode resource %s", name)
}

// JSON parses a JSON resource for gjson path queries.
func (h *Helper) JSON(name string) gjson.Result {
	h.t.Helper()
	result, err := h.reader.JSON(name)
	require.NoError(h.t, err, "cannot decode resource %s", name)
	return result
}

// Env reads a dotenv-format resource into a key/value map.
func (h *Helper) Env(name string) map[string]string {
	h.t.Helper()
	vars, err := h.reader.Env(name)
	require.NoError(h.t, err, "cannot parse resource %s", name)
	return vars
}
