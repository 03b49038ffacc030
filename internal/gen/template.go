package gen

import "text/template"

// Template for the generated lens file. Sections are emitted in a fixed
// order: lookup accessor, constructor (unless reconciled away), lens
// namespace, field keys, registry.
var lensFileTemplate = template.Must(template.New("lensfile").Parse(`// Code generated by lens-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	"{{.}}"
{{end}}	"{{.LensImport}}"
)

{{if .GenerateComments}}// {{.AccessorName}} returns the lens registered for the given {{.TypeName}} field key.
// Keys outside {{.TypeName}}Registry resolve to the zero Lens.
{{end}}func {{.AccessorName}}[T any](key {{.LensAlias}}.Field[{{.TypeName}}, T]) {{.LensAlias}}.Lens[{{.TypeName}}, T] {
	l, _ := {{.LensAlias}}.Lookup({{.TypeName}}Registry, key)
	return l
}
{{if .Constructor}}
{{if .GenerateComments}}// {{.Constructor.Name}} constructs a {{.TypeName}} from every stored field.
{{end}}func {{.Constructor.Name}}({{.Constructor.ParamList}}) {{.TypeName}} {
	return {{.TypeName}}{
{{range .Constructor.Assigns}}		{{.Field}}: {{.Param}},
{{end}}	}
}
{{end}}
{{if .GenerateComments}}// {{.TypeName}}Lenses holds one lens per public field of {{.TypeName}}.
{{end}}var {{.TypeName}}Lenses = struct {
{{range .Lenses}}	{{.Field}} {{$.LensAlias}}.Lens[{{$.TypeName}}, {{.Type}}]
{{end}}}{
{{range .Lenses}}	{{.Field}}: {{$.LensAlias}}.New(
		func(s {{$.TypeName}}) {{.Type}} { return s.{{.Field}} },
		func(s {{$.TypeName}}, v {{.Type}}) {{$.TypeName}} { return {{$.CtorName}}({{.SetterArgs}}) },
	),
{{end}}}

{{if .GenerateComments}}// {{.TypeName}}Fields holds one typed key per public field of {{.TypeName}}.
{{end}}var {{.TypeName}}Fields = struct {
{{range .Lenses}}	{{.Field}} {{$.LensAlias}}.Field[{{$.TypeName}}, {{.Type}}]
{{end}}}{
{{range .Lenses}}	{{.Field}}: {{$.LensAlias}}.NewField[{{$.TypeName}}, {{.Type}}]("{{.Field}}"),
{{end}}}

{{if .GenerateComments}}// {{.TypeName}}Registry maps {{.TypeName}} field names to their lenses.
{{end}}var {{.TypeName}}Registry = {{.LensAlias}}.NewRegistry[{{.TypeName}}](
{{range .Lenses}}	{{$.LensAlias}}.Entry({{$.TypeName}}Fields.{{.Field}}, {{$.TypeName}}Lenses.{{.Field}}),
{{end}})
`))
