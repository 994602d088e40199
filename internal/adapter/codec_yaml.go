package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/quire/internal/model"
)

// QuireCodec reads and writes quire's native YAML notebook format (.qrn).
// The format stores cell source as a single block scalar, which keeps files
// readable under diff.
type QuireCodec struct{}

// NewQuireCodec constructs the native YAML codec.
func NewQuireCodec() *QuireCodec {
	return &QuireCodec{}
}

// Name identifies the codec.
func (c *QuireCodec) Name() string { return "quire" }

// Extensions lists the handled file extensions.
func (c *QuireCodec) Extensions() []string { return []string{".qrn"} }

type quireFile struct {
	Version  int               `yaml:"version"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
	Cells    []quireCell       `yaml:"cells"`
}

type quireCell struct {
	Kind     string            `yaml:"kind"`
	Language string            `yaml:"language,omitempty"`
	Source   string            `yaml:"source"`
	Outputs  []quireOutput     `yaml:"outputs,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

type quireOutput struct {
	Type string `yaml:"type"`
	Name string `yaml:"name,omitempty"`
	Text string `yaml:"text,omitempty"`
}

const quireFormatVersion = 1

// Decode parses a .qrn document.
func (c *QuireCodec) Decode(data []byte) (*m.Notebook, error) {
	var file quireFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse qrn: %w", err)
	}

	if file.Version > quireFormatVersion {
		return nil, fmt.Errorf("unsupported qrn version %d", file.Version)
	}

	nb := &m.Notebook{
		Cells:    make([]*m.Cell, 0, len(file.Cells)),
		Metadata: file.Metadata,
	}

	for i, raw := range file.Cells {
		kind := m.CellKind(raw.Kind)
		if kind != m.KindCode && kind != m.KindMarkup {
			return nil, fmt.Errorf("cell %d: unknown kind %q", i, raw.Kind)
		}

		cell := &m.Cell{
			Kind:     kind,
			Language: raw.Language,
			Metadata: raw.Metadata,
		}
		cell.SetText(raw.Source)

		for _, out := range raw.Outputs {
			cell.Outputs = append(cell.Outputs, m.Output(out))
		}

		nb.Cells = append(nb.Cells, cell)
	}

	return nb, nil
}

// Encode renders the notebook as .qrn YAML.
func (c *QuireCodec) Encode(nb *m.Notebook) ([]byte, error) {
	file := quireFile{
		Version:  quireFormatVersion,
		Metadata: nb.Metadata,
		Cells:    make([]quireCell, 0, nb.Len()),
	}

	for _, cell := range nb.Cells {
		raw := quireCell{
			Kind:     string(cell.Kind),
			Language: cell.Language,
			Source:   cell.Text(),
			Metadata: cell.Metadata,
		}

		for _, out := range cell.Outputs {
			raw.Outputs = append(raw.Outputs, quireOutput(out))
		}

		file.Cells = append(file.Cells, raw)
	}

	return yaml.Marshal(file)
}
