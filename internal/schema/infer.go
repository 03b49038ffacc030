package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LiteralKind classifies a default literal.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralBool
	LiteralInt
	LiteralFloat
	LiteralString
)

// String returns a human-readable literal kind name.
func (k LiteralKind) String() string {
	switch k {
	case LiteralBool:
		return "bool"
	case LiteralInt:
		return "int"
	case LiteralFloat:
		return "float"
	case LiteralString:
		return "string"
	default:
		return "none"
	}
}

// Literal is a member's default value, kept as written plus its inferred
// classification. Only the four scalar kinds below carry a canonical Go
// type; everything else is unresolvable.
type Literal struct {
	// Raw is the literal text, as valid Go source (strings are quoted).
	Raw string
	// Kind is the classification used for type inference.
	Kind LiteralKind
}

// UnmarshalYAML classifies a scalar node by its resolved YAML tag.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid default literal: want a scalar, got yaml kind %d", node.Kind)
	}

	switch node.Tag {
	case "!!bool":
		l.Kind = LiteralBool
		l.Raw = node.Value
	case "!!int":
		l.Kind = LiteralInt
		l.Raw = node.Value
	case "!!float":
		l.Kind = LiteralFloat
		l.Raw = node.Value
	case "!!str":
		l.Kind = LiteralString
		l.Raw = fmt.Sprintf("%q", node.Value)
	default:
		l.Kind = LiteralNone
		l.Raw = node.Value
	}

	return nil
}

// GoType returns the canonical Go type for the literal, or false when the
// literal kind carries no inferable type.
func (l Literal) GoType() (string, bool) {
	switch l.Kind {
	case LiteralBool:
		return "bool", true
	case LiteralInt:
		return "int", true
	case LiteralFloat:
		return "float64", true
	case LiteralString:
		return "string", true
	default:
		return "", false
	}
}

// ResolveType returns the member's type: the explicit annotation when
// present, otherwise the type inferred from the default literal. The second
// result is false when neither resolves.
func (m *Member) ResolveType() (string, bool) {
	if m.Type != "" {
		return m.Type, true
	}

	if m.Default != nil {
		return m.Default.GoType()
	}

	return "", false
}
