package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/quire/internal/model"
)

// ScriptPoint addresses a position inside a cell's text in an edit script.
type ScriptPoint struct {
	Line int `yaml:"line"`
	Col  int `yaml:"col"`
}

// ScriptOp is one structural operation in an edit script. Which fields are
// meaningful depends on Op:
//
//	join     index, direction (above|below)
//	split    index, points
//	move     index, count, to (to is in post-removal index space)
//	copy     index, count
//	insert   index, kind, language, source
//	delete   index, count
//	set-kind index, kind
type ScriptOp struct {
	Op        string        `yaml:"op"`
	Index     int           `yaml:"index"`
	Count     int           `yaml:"count,omitempty"`
	To        int           `yaml:"to,omitempty"`
	Direction string        `yaml:"direction,omitempty"`
	Kind      string        `yaml:"kind,omitempty"`
	Language  string        `yaml:"language,omitempty"`
	Source    string        `yaml:"source,omitempty"`
	Points    []ScriptPoint `yaml:"points,omitempty"`
}

// Script is an ordered batch of operations applied as one transaction.
type Script struct {
	Ops []ScriptOp `yaml:"ops"`
}

// ScriptStore loads edit scripts.
type ScriptStore interface {
	Load(path m.Path) (Script, error)
}

// LocalScriptStore reads YAML edit scripts from the local filesystem.
type LocalScriptStore struct{}

// NewLocalScriptStore constructs a LocalScriptStore.
func NewLocalScriptStore() *LocalScriptStore {
	return &LocalScriptStore{}
}

// Load reads and validates the script at path.
func (s *LocalScriptStore) Load(path m.Path) (Script, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("parse script %s: %w", path, err)
	}

	if len(script.Ops) == 0 {
		return Script{}, fmt.Errorf("script %s contains no operations", path)
	}

	for i, op := range script.Ops {
		switch op.Op {
		case "join", "split", "move", "copy", "insert", "delete", "set-kind":
		default:
			return Script{}, fmt.Errorf("script %s: op %d has unknown kind %q", path, i, op.Op)
		}
	}

	return script, nil
}
