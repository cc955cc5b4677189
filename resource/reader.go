// Package resource loads fixture files bundled alongside test code. A Reader
// resolves a resource name relative to the test file that constructed it and
// exposes the contents as raw bytes, as a decoded string, or as a lazily
// produced sequence of text lines. Helper wraps a Reader for use inside a
// test body, turning every lookup failure into an unrecoverable test failure
// that carries the offending resource name.
package resource

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Reader loads resources from a backing filesystem. Every operation is a
// single synchronous resolve-then-read; the Reader itself holds no open
// handles and is safe to reuse across calls.
type Reader struct {
	fs       afero.Fs
	resolver Resolver
	enc      encoding.Encoding
}

type options struct {
	fs       afero.Fs
	resolver Resolver
	root     string
	anchor   string
	enc      encoding.Encoding
	skip     int
}

// Option configures a Reader at construction.
type Option func(*options)

// WithFs replaces the backing filesystem. The default is the OS filesystem;
// tests of resolution logic use an in-memory afero tree.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) { o.fs = fsys }
}

// WithResolver replaces the whole name-to-location mapping, bypassing the
// anchor and root settings.
func WithResolver(r Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithRoot sets the directory absolute resource names resolve under.
func WithRoot(dir string) Option {
	return func(o *options) { o.root = dir }
}

// WithAnchor sets the directory relative resource names resolve under,
// overriding the default of the calling file's directory. Shared test bases
// whose fixtures live elsewhere use this the way a subclass would override
// the resource class.
func WithAnchor(dir string) Option {
	return func(o *options) { o.anchor = dir }
}

// WithAnchorOf skips extra call frames when deriving the default anchor.
// Helper constructors that wrap New pass the number of frames between their
// caller and New so the anchor lands on the test file, not the wrapper.
func WithAnchorOf(extraFrames int) Option {
	return func(o *options) { o.skip = extraFrames }
}

// WithEncoding sets the default text encoding for String and Lines. The
// default is UTF-8.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) { o.enc = enc }
}

// New returns a Reader whose relative names resolve against the calling
// file's directory, mirroring how a classloader anchors resources to the
// class that requests them.
func New(opts ...Option) *Reader {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.resolver == nil {
		anchor := o.anchor
		if anchor == "" {
			anchor = callerDir(1 + o.skip)
		}
		o.resolver = DirResolver{Root: o.root, Anchor: anchor}
	}
	return &Reader{fs: o.fs, resolver: o.resolver, enc: o.enc}
}

func (r *Reader) resolve(name string) (string, error) {
	location, err := r.resolver.Resolve(name)
	if err != nil {
		return "", unavailable(name, err)
	}
	log.Debugf("resolved resource %s to %s", name, location)
	return location, nil
}

// Bytes reads the whole resource into memory. It fails with an
// UnavailableError carrying name if the resource cannot be located or read.
func (r *Reader) Bytes(name string) ([]byte, error) {
	location, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, location)
	if err != nil {
		return nil, unavailable(name, err)
	}
	return data, nil
}

// String reads the whole resource and decodes it with the Reader's default
// encoding (UTF-8 unless configured otherwise).
func (r *Reader) String(name string) (string, error) {
	return r.StringEncoding(name, r.enc)
}

// StringEncoding reads the whole resource and decodes it with the given
// encoding. Decode errors propagate from the x/text decoder unchanged.
func (r *Reader) StringEncoding(name string, enc encoding.Encoding) (string, error) {
	data, err := r.Bytes(name)
	if err != nil {
		return "", err
	}
	return decodeString(data, enc)
}

// Open returns a byte stream for the resource, read straight through the
// backing filesystem without materializing the contents. The caller must
// close it on every exit path.
func (r *Reader) Open(name string) (io.ReadCloser, error) {
	location, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := r.fs.Open(location)
	if err != nil {
		return nil, unavailable(name, err)
	}
	return f, nil
}

// Lines opens the resource as a lazily produced sequence of text lines
// decoded with the Reader's default encoding. The caller must close it.
func (r *Reader) Lines(name string) (*Lines, error) {
	return r.LinesEncoding(name, r.enc)
}

// LinesEncoding opens the resource as a line sequence decoded with the given
// encoding. Line boundaries follow the universal rules: CR, LF and CRLF all
// terminate a line and a final terminator adds no empty line.
func (r *Reader) LinesEncoding(name string, enc encoding.Encoding) (*Lines, error) {
	f, err := r.Open(name)
	if err != nil {
		return nil, err
	}
	var src io.Reader = f
	if enc != nil {
		src = transform.NewReader(f, enc.NewDecoder())
	}
	return newLines(src, f), nil
}

func decodeString(data []byte, enc encoding.Encoding) (string, error) {
	if enc == nil {
		return string(data), nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
