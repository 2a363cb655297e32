package valfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"cssvalue/internal/ast"
)

// NodeOutput is the wire form of a node, shared by JSON, msgpack and the
// disk cache.
type NodeOutput struct {
	Type        string       `json:"type" msgpack:"type"`
	Value       string       `json:"value" msgpack:"value"`
	SourceIndex uint32       `json:"sourceIndex" msgpack:"source_index"`
	Nodes       []NodeOutput `json:"nodes,omitempty" msgpack:"nodes,omitempty"`
}

// ToOutput converts a tree to its wire form.
func ToOutput(nodes []ast.Node) []NodeOutput {
	out := make([]NodeOutput, 0, len(nodes))
	for _, n := range nodes {
		o := NodeOutput{
			Type:        n.Kind().String(),
			Value:       n.Text(),
			SourceIndex: n.Pos(),
		}
		if f, ok := n.(*ast.Function); ok {
			o.Nodes = ToOutput(f.Nodes)
		}
		out = append(out, o)
	}
	return out
}

// FromOutput rebuilds a tree from its wire form.
func FromOutput(out []NodeOutput) ([]ast.Node, error) {
	nodes := make([]ast.Node, 0, len(out))
	for _, o := range out {
		kind, ok := ast.ParseKind(o.Type)
		if !ok {
			return nil, fmt.Errorf("unknown node type %q at %d", o.Type, o.SourceIndex)
		}
		if kind == ast.KindFunction {
			children, err := FromOutput(o.Nodes)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &ast.Function{SourceIndex: o.SourceIndex, Value: o.Value, Nodes: children})
			continue
		}
		if len(o.Nodes) > 0 {
			return nil, fmt.Errorf("%s node at %d has children", o.Type, o.SourceIndex)
		}
		nodes = append(nodes, ast.NewLeaf(kind, o.SourceIndex, o.Value))
	}
	return nodes, nil
}

// FormatTreeJSON writes the tree as indented JSON.
func FormatTreeJSON(w io.Writer, nodes []ast.Node) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ToOutput(nodes))
}

// FormatTreeMsgpack writes the tree as one msgpack array.
func FormatTreeMsgpack(w io.Writer, nodes []ast.Node) error {
	enc := msgpack.NewEncoder(w)
	enc.UseCompactInts(true)
	return enc.Encode(ToOutput(nodes))
}

// DecodeTreeMsgpack reads a tree written by FormatTreeMsgpack.
func DecodeTreeMsgpack(r io.Reader) ([]ast.Node, error) {
	var out []NodeOutput
	if err := msgpack.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return FromOutput(out)
}
