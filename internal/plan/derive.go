package plan

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"lens-generator/internal/common"
	"lens-generator/internal/diagnostic"
	"lens-generator/internal/schema"
)

// Derive analyzes a declaration and produces a generation plan.
//
// A non-struct declaration yields a nil plan and exactly one error
// diagnostic. Members that bind multiple names or whose type cannot be
// resolved are excluded from the plan with info/warning diagnostics; the
// remaining fields still derive (best-effort partial output).
func Derive(d *schema.Decl) (*Plan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if d.Kind != schema.KindStruct {
		diags.AddError(CodeNotAStruct,
			fmt.Sprintf("cannot derive lenses for %s declaration %q: lenses require a struct type", d.Kind, d.Name),
			d.Name, "")

		return nil, diags
	}

	p := &Plan{
		TypeName: d.Name,
		Package:  d.Package,
		PkgPath:  d.PkgPath,
		Dir:      d.Dir,
		Imports:  append([]string(nil), d.Imports...),
	}

	extractFields(d, p, &diags)
	reconcileConstructor(d, p, &diags)
	synthesizeLenses(p)

	return p, diags
}

// extractFields keeps single-name members with a resolvable type, in
// declaration order.
func extractFields(d *schema.Decl, p *Plan, diags *diagnostic.Diagnostics) {
	for i := range d.Members {
		m := &d.Members[i]

		if common.IsEmpty(m.Names) {
			continue
		}

		if !common.IsSingle(m.Names) {
			diags.AddInfo(CodeMultiBinding,
				fmt.Sprintf("member binds %d names (%s); only single bindings derive",
					len(m.Names), strings.Join(m.Names, ", ")),
				d.Name, m.Names[0])

			continue
		}

		name := m.Names[0]

		typ, ok := m.ResolveType()
		if !ok {
			diags.AddWarning(CodeUnresolvedType,
				fmt.Sprintf("field %q has no explicit type and no inferable default; excluded from constructor and lenses", name),
				d.Name, name)

			continue
		}

		p.Fields = append(p.Fields, Field{
			Name:       name,
			Type:       typ,
			Visibility: m.Visibility,
			Inferred:   m.Type == "",
		})
	}
}

// reconcileConstructor reuses an existing initializer whose signature equals
// the canonical one, otherwise plans a synthesized unexported constructor.
func reconcileConstructor(d *schema.Decl, p *Plan, diags *diagnostic.Diagnostics) {
	params := canonicalParams(p.Fields)

	for i := range d.Initializers {
		init := &d.Initializers[i]

		if !schema.SameSignature(init.Params, params) {
			continue
		}

		if init.Name == "" {
			diags.AddInfo(CodeUnnamedInitializer,
				"initializer matches the canonical signature but has no name; synthesizing a constructor instead",
				d.Name, "")

			continue
		}

		p.Constructor = Constructor{Name: init.Name, Params: params, Reused: true}

		return
	}

	p.Constructor = Constructor{Name: SynthesizedName(d.Name), Params: params}
}

// canonicalParams builds the canonical constructor parameter list: one per
// field, declaration order. Field names that lower-case to the same
// parameter name (e.g. Name and name, both legal in one struct) get a
// deterministic numeric suffix so the parameter list stays valid Go.
func canonicalParams(fields []Field) []schema.Param {
	used := make(map[string]bool, len(fields))
	params := make([]schema.Param, len(fields))

	for i, f := range fields {
		base := ParamName(f.Name)

		name := base
		for n := 2; used[name]; n++ {
			name = base + strconv.Itoa(n)
		}

		used[name] = true
		params[i] = schema.Param{Name: name, Type: f.Type}
	}

	return params
}

// synthesizeLenses plans one lens per public extracted field. Runs after
// reconcileConstructor so parameter names come from the reconciled list.
func synthesizeLenses(p *Plan) {
	for i, f := range p.Fields {
		if f.Visibility != schema.VisibilityPublic {
			continue
		}

		p.Lenses = append(p.Lenses, LensDecl{
			Field: f.Name,
			Param: p.Constructor.Params[i].Name,
			Type:  f.Type,
		})
	}
}

// SynthesizedName returns the name of the synthesized constructor for a
// type, e.g. "newUserAll" for User.
func SynthesizedName(typeName string) string {
	return "new" + upperFirst(typeName) + "All"
}

// ParamName returns the canonical constructor parameter name for a field.
// The field name is lower-cased on its first rune; names that collide with
// a Go keyword get an "Arg" suffix.
func ParamName(fieldName string) string {
	name := lowerFirst(fieldName)
	if goKeywords[name] {
		return name + "Arg"
	}

	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])

	return string(r)
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}
