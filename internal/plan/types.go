package plan

import (
	"lens-generator/internal/schema"
)

// Diagnostic codes reported by Derive.
const (
	// CodeNotAStruct rejects derivation over a non-struct declaration.
	CodeNotAStruct = "lensgen-not-a-struct"
	// CodeUnresolvedType marks a member excluded because its type could not
	// be resolved from an annotation or a default literal.
	CodeUnresolvedType = "lensgen-unresolved-type"
	// CodeMultiBinding marks a member excluded because it binds more than
	// one name.
	CodeMultiBinding = "lensgen-multi-binding"
	// CodeUnnamedInitializer marks an initializer that matched the canonical
	// signature but has no callable name and so cannot be reused.
	CodeUnnamedInitializer = "lensgen-unnamed-initializer"
)

// Field is one extracted field. Every extracted field becomes a constructor
// parameter; only public ones get a lens.
type Field struct {
	// Name is the declared field name.
	Name string
	// Type is the resolved Go type expression.
	Type string
	// Visibility tier of the field.
	Visibility schema.Visibility
	// Inferred is true when Type came from a default literal rather than an
	// explicit annotation.
	Inferred bool
}

// Constructor is the canonical full-field constructor the setters route
// through.
type Constructor struct {
	// Name of the function to call. Either an existing initializer's name
	// (Reused true) or the synthesized unexported constructor.
	Name string
	// Params is the canonical parameter list: one per extracted field, in
	// declaration order.
	Params []schema.Param
	// Reused is true when an author-supplied initializer with an identical
	// signature exists; in that case nothing new is emitted.
	Reused bool
}

// LensDecl describes one lens to emit.
type LensDecl struct {
	// Field is the struct field the lens focuses.
	Field string
	// Param is the constructor parameter carrying the field's value.
	Param string
	// Type is the focus type.
	Type string
}

// Plan is the complete generation plan for one declaration.
type Plan struct {
	// TypeName of the source struct.
	TypeName string
	// Package name of the generated file.
	Package string
	// PkgPath is the import path of that package, when known.
	PkgPath string
	// Dir is the directory the generated file belongs in, when known.
	Dir string
	// Imports lists extra import paths required by field types.
	Imports []string
	// Fields are the extracted fields, declaration order.
	Fields []Field
	// Constructor is the reconciled canonical constructor.
	Constructor Constructor
	// Lenses are the lens declarations for public fields, declaration
	// order. The registry holds exactly these, in this order.
	Lenses []LensDecl
}
