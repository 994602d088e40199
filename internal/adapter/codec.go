// Package adapter contains persistence and format adapters for the quire
// CLI: notebook codecs, the codec registry, the notebook store and the edit
// script store.
package adapter

import (
	m "github.com/mouse-blink/quire/internal/model"
)

// Codec encodes and decodes one notebook file format.
type Codec interface {
	// Name identifies the codec in error messages.
	Name() string

	// Extensions lists the file extensions (with leading dot) handled by
	// this codec.
	Extensions() []string

	Decode(data []byte) (*m.Notebook, error)
	Encode(nb *m.Notebook) ([]byte, error)
}
