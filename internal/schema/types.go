package schema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DeclKind is the kind of a declaration. Only struct declarations are
// eligible for lens derivation; other kinds are rejected with a diagnostic.
type DeclKind string

const (
	KindStruct    DeclKind = "struct"
	KindInterface DeclKind = "interface"
	KindAlias     DeclKind = "alias"
	KindFunc      DeclKind = "func"
	KindUnknown   DeclKind = "unknown"
)

// IsValid returns true if the kind is a recognized value.
func (k DeclKind) IsValid() bool {
	switch k {
	case KindStruct, KindInterface, KindAlias, KindFunc, KindUnknown:
		return true
	default:
		return false
	}
}

// Visibility is an ordered access tier: private < internal < public.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityInternal
	VisibilityPublic
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityPublic:
		return "public"
	default:
		return "unknown"
	}
}

// UnmarshalYAML parses a visibility tier. An absent or empty value defaults
// to private.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	switch s {
	case "", "private":
		*v = VisibilityPrivate
	case "internal":
		*v = VisibilityInternal
	case "public":
		*v = VisibilityPublic
	default:
		return fmt.Errorf("invalid visibility %q (want private, internal, or public)", s)
	}

	return nil
}

// NameList is a member binding pattern. YAML formats supported:
//   - Single string: "name"
//   - Array of strings: [width, height]
type NameList []string

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (n *NameList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*n = NameList{s}

		return nil

	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}

		*n = NameList(ss)

		return nil

	default:
		return fmt.Errorf("invalid binding pattern (want string or string list), got yaml kind %d", node.Kind)
	}
}

// Member is one stored-member declaration. A member may bind several names
// (e.g., "a, b int" in Go); only single-name members are eligible for
// derivation.
type Member struct {
	// Names is the binding pattern.
	Names NameList `yaml:"name"`
	// Type is the explicit type annotation, if any.
	Type string `yaml:"type,omitempty"`
	// Default is the initializer literal, if any. When Type is empty the
	// member's type is inferred from this literal.
	Default *Literal `yaml:"default,omitempty"`
	// Visibility tier; defaults to private.
	Visibility Visibility `yaml:"visibility,omitempty"`
}

// Param is one (name, type) pair of an initializer parameter list.
type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Initializer is an existing constructor declaration of a Decl.
type Initializer struct {
	// Name of the constructor function. Optional in YAML descriptions.
	Name string `yaml:"name,omitempty"`
	// Params is the ordered parameter list.
	Params []Param `yaml:"params"`
}

// SameSignature reports whether two parameter lists are equivalent: same
// length and identical (name, type) pairs in the same order.
func SameSignature(a, b []Param) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Decl is a single declaration to derive lenses for.
type Decl struct {
	// Name of the declared type.
	Name string `yaml:"name"`
	// Kind of declaration; defaults to struct in YAML descriptions.
	Kind DeclKind `yaml:"kind,omitempty"`
	// Package is the Go package name the generated file belongs to.
	Package string `yaml:"package,omitempty"`
	// PkgPath is the import path of that package, when known.
	PkgPath string `yaml:"-"`
	// Dir is the directory holding the package sources, when known.
	Dir string `yaml:"-"`
	// Imports lists extra import paths needed by member types.
	Imports []string `yaml:"imports,omitempty"`
	// Members is the ordered member list.
	Members []Member `yaml:"fields"`
	// Initializers lists existing constructor declarations.
	Initializers []Initializer `yaml:"initializers,omitempty"`
}

// File is the root of a YAML declaration description file.
type File struct {
	// Version of the description schema (for future compatibility).
	Version string `yaml:"version,omitempty"`
	// Package applies to all structures that do not set their own.
	Package string `yaml:"package,omitempty"`
	// Structures is the list of declarations.
	Structures []Decl `yaml:"structures"`
}
