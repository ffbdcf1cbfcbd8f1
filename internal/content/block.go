package content

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// BlockKind distinguishes the two variants of an article content block.
type BlockKind int

const (
	TextBlock BlockKind = iota
	DiagramBlock
)

func (k BlockKind) String() string {
	switch k {
	case TextBlock:
		return "text"
	case DiagramBlock:
		return "diagram"
	default:
		return fmt.Sprintf("BlockKind(%d)", int(k))
	}
}

// Block is one unit of an article body: narrative text or a diagram reference.
// Text is set for TextBlock; DiagramID and Caption for DiagramBlock.
type Block struct {
	Kind      BlockKind
	Text      string
	DiagramID string
	Caption   string
}

// Text returns a text block.
func Text(s string) Block {
	return Block{Kind: TextBlock, Text: s}
}

// Diagram returns a diagram block.
func Diagram(id, caption string) Block {
	return Block{Kind: DiagramBlock, DiagramID: id, Caption: caption}
}

// UnmarshalYAML decodes a scalar as a text block and a mapping with
// kind: diagram as a diagram block.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*b = Text(node.Value)
		return nil
	case yaml.MappingNode:
		var raw struct {
			Kind      string `yaml:"kind"`
			DiagramID string `yaml:"diagramId"`
			Caption   string `yaml:"caption"`
		}
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("line %d: decoding block: %w", node.Line, err)
		}
		if raw.Kind != "diagram" {
			return fmt.Errorf("line %d: unsupported block kind %q", node.Line, raw.Kind)
		}
		*b = Diagram(raw.DiagramID, raw.Caption)
		return nil
	default:
		return fmt.Errorf("line %d: block must be a string or a mapping", node.Line)
	}
}

// MarshalYAML is the inverse of UnmarshalYAML.
func (b Block) MarshalYAML() (interface{}, error) {
	if b.Kind == TextBlock {
		return b.Text, nil
	}
	out := map[string]string{"kind": "diagram", "diagramId": b.DiagramID}
	if b.Caption != "" {
		out["caption"] = b.Caption
	}
	return out, nil
}
