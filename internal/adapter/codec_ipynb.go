package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	m "github.com/mouse-blink/quire/internal/model"
)

// IpynbCodec reads and writes Jupyter nbformat 4 files. Only the structural
// subset quire edits is mapped onto the model; notebook-level metadata it
// does not understand is preserved as opaque strings.
type IpynbCodec struct{}

// NewIpynbCodec constructs the Jupyter JSON codec.
func NewIpynbCodec() *IpynbCodec {
	return &IpynbCodec{}
}

// Name identifies the codec.
func (c *IpynbCodec) Name() string { return "ipynb" }

// Extensions lists the handled file extensions.
func (c *IpynbCodec) Extensions() []string { return []string{".ipynb"} }

type ipynbFile struct {
	NBFormat      int           `json:"nbformat"`
	NBFormatMinor int           `json:"nbformat_minor"`
	Metadata      ipynbMetadata `json:"metadata"`
	Cells         []ipynbCell   `json:"cells"`
}

type ipynbMetadata struct {
	LanguageInfo struct {
		Name string `json:"name,omitempty"`
	} `json:"language_info,omitempty"`
}

// cellTypeMetaKey stashes a cell_type the model has no kind for, so a
// round trip writes the cell back the way it was read.
const cellTypeMetaKey = "cell_type"

type ipynbCell struct {
	CellType string            `json:"cell_type"`
	Source   ipynbSource       `json:"source"`
	Metadata map[string]string `json:"metadata,omitempty"`

	// Outputs is a pointer so code cells can emit an empty array while
	// markdown and raw cells omit the key entirely, as nbformat requires.
	Outputs *[]ipynbOutput `json:"outputs,omitempty"`
}

type ipynbOutput struct {
	OutputType string      `json:"output_type"`
	Name       string      `json:"name,omitempty"`
	Text       ipynbSource `json:"text,omitempty"`
}

// ipynbSource accepts both the list-of-lines and single-string encodings the
// format allows.
type ipynbSource []string

func (s *ipynbSource) UnmarshalJSON(data []byte) error {
	var lines []string
	if err := json.Unmarshal(data, &lines); err == nil {
		*s = lines
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}

	*s = []string{one}

	return nil
}

// Decode parses a .ipynb document.
func (c *IpynbCodec) Decode(data []byte) (*m.Notebook, error) {
	var file ipynbFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse ipynb: %w", err)
	}

	if file.NBFormat != 0 && file.NBFormat != 4 {
		return nil, fmt.Errorf("unsupported nbformat %d", file.NBFormat)
	}

	language := file.Metadata.LanguageInfo.Name

	nb := &m.Notebook{Cells: make([]*m.Cell, 0, len(file.Cells))}
	if language != "" {
		nb.Metadata = map[string]string{"language": language}
	}

	for _, raw := range file.Cells {
		cell := &m.Cell{
			Kind:     kindFromCellType(raw.CellType),
			Language: language,
			Metadata: raw.Metadata,
		}

		// The single-string source form may carry embedded newlines;
		// joining and re-splitting normalizes both encodings into lines.
		cell.SetText(strings.Join(raw.Source, ""))

		switch raw.CellType {
		case "markdown":
			cell.Language = "markdown"
		case "raw":
			// Remember the original type so encode does not silently
			// rewrite raw cells as markdown.
			cell.Language = ""
			if cell.Metadata == nil {
				cell.Metadata = map[string]string{}
			}

			cell.Metadata[cellTypeMetaKey] = "raw"
		}

		if raw.Outputs != nil {
			for _, out := range *raw.Outputs {
				cell.Outputs = append(cell.Outputs, m.Output{
					Type: out.OutputType,
					Name: out.Name,
					Text: strings.Join(out.Text, ""),
				})
			}
		}

		nb.Cells = append(nb.Cells, cell)
	}

	return nb, nil
}

// Encode renders the notebook as nbformat 4 JSON.
func (c *IpynbCodec) Encode(nb *m.Notebook) ([]byte, error) {
	file := ipynbFile{
		NBFormat:      4,
		NBFormatMinor: 5,
		Cells:         make([]ipynbCell, 0, nb.Len()),
	}

	if nb.Metadata != nil {
		file.Metadata.LanguageInfo.Name = nb.Metadata["language"]
	}

	for _, cell := range nb.Cells {
		raw := ipynbCell{
			CellType: cellTypeFromKind(cell.Kind),
			Source:   joinLineEndings(cell.Source),
			Metadata: cell.Metadata,
		}

		if cell.Kind == m.KindMarkup && cell.Metadata[cellTypeMetaKey] == "raw" {
			raw.CellType = "raw"
			raw.Metadata = metadataWithoutKey(cell.Metadata, cellTypeMetaKey)
		}

		if cell.Kind == m.KindCode {
			// Code cells must carry an outputs array, even when empty.
			outs := make([]ipynbOutput, 0, len(cell.Outputs))
			for _, out := range cell.Outputs {
				outs = append(outs, ipynbOutput{
					OutputType: out.Type,
					Name:       out.Name,
					Text:       splitKeepNewlines(out.Text),
				})
			}

			raw.Outputs = &outs
		}

		file.Cells = append(file.Cells, raw)
	}

	return json.MarshalIndent(file, "", " ")
}

func kindFromCellType(cellType string) m.CellKind {
	if cellType == "markdown" || cellType == "raw" {
		return m.KindMarkup
	}

	return m.KindCode
}

func cellTypeFromKind(kind m.CellKind) string {
	if kind == m.KindMarkup {
		return "markdown"
	}

	return "code"
}

// metadataWithoutKey copies metadata minus one key, leaving the cell's own
// map untouched. A map holding only that key encodes as no metadata at all.
func metadataWithoutKey(meta map[string]string, key string) map[string]string {
	if len(meta) <= 1 {
		return nil
	}

	out := make(map[string]string, len(meta)-1)
	for k, v := range meta {
		if k != key {
			out[k] = v
		}
	}

	return out
}

// joinLineEndings re-attaches the trailing "\n" to every line but the last.
func joinLineEndings(lines []string) []string {
	if len(lines) == 0 {
		return []string{""}
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if i < len(lines)-1 {
			out[i] = line + "\n"
		} else {
			out[i] = line
		}
	}

	return out
}

func splitKeepNewlines(text string) ipynbSource {
	if text == "" {
		return nil
	}

	parts := strings.SplitAfter(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	return parts
}
