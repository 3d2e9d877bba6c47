// Package treefile loads YAML tree documents and builds IR through the
// public constructors, so construction-time validation applies to
// documents exactly as it does to hand-assembled trees. It is a front
// end: the rendering core knows nothing about it.
package treefile

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astir-lang/astir/internal/ir"
	"github.com/astir-lang/astir/internal/version"
)

// Document is the top level of a tree file.
type Document struct {
	// Astir optionally constrains the astir version the document was
	// written for, e.g. ">= 0.17, < 1".
	Astir  string      `yaml:"astir,omitempty"`
	Module string      `yaml:"module"`
	Body   []*NodeSpec `yaml:"body"`
}

// NodeSpec is the YAML shape of one node. It is the union of the fields
// of every supported kind; Kind selects which are read.
type NodeSpec struct {
	Kind string `yaml:"kind"`

	Name    string       `yaml:"name,omitempty"`
	Type    string       `yaml:"type,omitempty"`
	Value   yaml.Node    `yaml:"value,omitempty"`
	Names   []*AliasSpec `yaml:"names,omitempty"`
	Module  string       `yaml:"module,omitempty"`
	Level   int          `yaml:"level,omitempty"`
	Args    []*NodeSpec  `yaml:"args,omitempty"`
	Returns string       `yaml:"returns,omitempty"`
	Body    []*NodeSpec  `yaml:"body,omitempty"`
	Callee  string       `yaml:"callee,omitempty"`
	Op      string       `yaml:"op,omitempty"`
	LHS     *NodeSpec    `yaml:"lhs,omitempty"`
	RHS     *NodeSpec    `yaml:"rhs,omitempty"`
	Operand *NodeSpec    `yaml:"operand,omitempty"`
	Cond    *NodeSpec    `yaml:"cond,omitempty"`
	Then    []*NodeSpec  `yaml:"then,omitempty"`
	Else    []*NodeSpec  `yaml:"else,omitempty"`
	ThenE   *NodeSpec    `yaml:"then_expr,omitempty"`
	ElseE   *NodeSpec    `yaml:"else_expr,omitempty"`
	Var     string       `yaml:"var,omitempty"`
	Start   *NodeSpec    `yaml:"start,omitempty"`
	End     *NodeSpec    `yaml:"end,omitempty"`
	Step    *NodeSpec    `yaml:"step,omitempty"`
	Expr    *NodeSpec    `yaml:"expr,omitempty"`
}

// AliasSpec is an imported name: either a bare scalar or a
// {name, as} mapping.
type AliasSpec struct {
	Name string `yaml:"name"`
	As   string `yaml:"as,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (a *AliasSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		a.Name = node.Value
		return nil
	}
	type plain AliasSpec
	return node.Decode((*plain)(a))
}

// Load reads a document and builds the module tree. The returned warnings
// list names variable references that resolve to no visible binding; by
// design those do not fail the load.
func Load(r io.Reader) (*ir.Module, []string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read tree document: %w", err)
	}
	return Parse(data)
}

// LoadFile loads a tree document from disk.
func LoadFile(path string) (*ir.Module, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Load(f)
}

// Parse builds the module tree from raw document bytes.
func Parse(data []byte) (*ir.Module, []string, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse tree document: %w", err)
	}
	if doc.Astir != "" {
		ok, err := version.Satisfies(doc.Astir)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, fmt.Errorf("document requires astir %q, running %s", doc.Astir, version.Version)
		}
	}
	if doc.Module == "" {
		doc.Module = "main"
	}

	mod := ir.NewModule(doc.Module)
	for _, spec := range doc.Body {
		stmt, err := buildStmt(spec)
		if err != nil {
			return nil, nil, err
		}
		mod.Append(stmt)
	}

	warnings := resolve(mod)
	return mod, warnings, nil
}
