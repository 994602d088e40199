package adapter

import (
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/quire/internal/model"
)

// CodecRegistry maps file extensions to notebook codecs. It is an explicit
// object owned by the composition root and passed by reference; there is no
// process-wide registry.
type CodecRegistry struct {
	byExt map[string]Codec
}

// NewCodecRegistry builds a registry from the given codecs. Later codecs win
// on extension conflicts.
func NewCodecRegistry(codecs ...Codec) *CodecRegistry {
	r := &CodecRegistry{byExt: make(map[string]Codec)}

	for _, c := range codecs {
		r.Register(c)
	}

	return r
}

// Register adds a codec for all of its extensions.
func (r *CodecRegistry) Register(c Codec) {
	for _, ext := range c.Extensions() {
		r.byExt[strings.ToLower(ext)] = c
	}
}

// Lookup returns the codec for the path's extension. It returns false when
// no codec is registered, leaving the decision to the caller.
func (r *CodecRegistry) Lookup(path m.Path) (Codec, bool) {
	c, ok := r.byExt[strings.ToLower(filepath.Ext(string(path)))]

	return c, ok
}

// Extensions returns the registered extensions, for error messages.
func (r *CodecRegistry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}

	return exts
}
