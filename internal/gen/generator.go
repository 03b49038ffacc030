package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"unicode"

	"lens-generator/internal/common"
	"lens-generator/internal/plan"
)

// Config holds configuration for code generation.
type Config struct {
	// LensImport is the import path of the lens runtime package.
	LensImport string
	// OutputDir overrides the plan's package directory when non-empty.
	// Also the destination for debug dumps of unformattable output.
	OutputDir string
	// GenerateComments enables doc comments on emitted declarations.
	GenerateComments bool
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		LensImport:       "lens-generator/lens",
		GenerateComments: true,
	}
}

// Generator renders plans into Go source files.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g., "user_lenses.go").
	Filename string
	// Dir is the directory the file belongs in; empty means the caller's
	// output directory.
	Dir string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one plan into one source file.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p.Package == "" {
		return nil, fmt.Errorf("plan for %s has no package name", p.TypeName)
	}

	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := lensFileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", p.TypeName, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", data.Filename, err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Dir:      p.Dir,
		Content:  formatted,
	}, nil
}

// GenerateAll renders every plan, collecting files.
func (g *Generator) GenerateAll(plans []*plan.Plan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, p := range plans {
		f, err := g.Generate(p)
		if err != nil {
			return nil, err
		}

		files = append(files, *f)
	}

	return files, nil
}

// templateData holds all data needed for the lens file template.
type templateData struct {
	PackageName      string
	Filename         string
	Imports          []string
	LensImport       string
	LensAlias        string
	TypeName         string
	AccessorName     string
	Constructor      *constructorData
	CtorName         string
	Lenses           []lensData
	GenerateComments bool
}

// constructorData describes the synthesized constructor; nil when an
// existing initializer was reconciled away.
type constructorData struct {
	Name      string
	ParamList string
	Assigns   []assignData
}

// assignData is one field assignment in the constructor body.
type assignData struct {
	Field string
	Param string
}

// lensData describes one lens declaration.
type lensData struct {
	Field      string
	Type       string
	SetterArgs string
}

// buildTemplateData constructs the template data from a plan.
func (g *Generator) buildTemplateData(p *plan.Plan) *templateData {
	data := &templateData{
		PackageName:      p.Package,
		Filename:         Filename(p.TypeName),
		LensImport:       g.config.LensImport,
		LensAlias:        common.PkgAlias(g.config.LensImport),
		TypeName:         p.TypeName,
		AccessorName:     p.TypeName + "Lens",
		CtorName:         p.Constructor.Name,
		GenerateComments: g.config.GenerateComments,
	}

	// Extra imports for field types, sorted, lens import excluded.
	seen := map[string]struct{}{g.config.LensImport: {}}
	for _, imp := range p.Imports {
		if _, ok := seen[imp]; ok {
			continue
		}

		seen[imp] = struct{}{}
		data.Imports = append(data.Imports, imp)
	}

	sort.Strings(data.Imports)

	if !p.Constructor.Reused {
		ctor := &constructorData{Name: p.Constructor.Name}

		var params []string
		for i, param := range p.Constructor.Params {
			params = append(params, param.Name+" "+param.Type)
			ctor.Assigns = append(ctor.Assigns, assignData{
				Field: p.Fields[i].Name,
				Param: param.Name,
			})
		}

		ctor.ParamList = strings.Join(params, ", ")
		data.Constructor = ctor
	}

	for _, l := range p.Lenses {
		data.Lenses = append(data.Lenses, lensData{
			Field:      l.Field,
			Type:       l.Type,
			SetterArgs: setterArgs(p, l.Field),
		})
	}

	return data
}

// setterArgs builds the constructor argument list for one lens's setter:
// the new value for the focused field, the current value for every other.
func setterArgs(p *plan.Plan, focused string) string {
	args := make([]string, 0, len(p.Fields))

	for _, f := range p.Fields {
		if f.Name == focused {
			args = append(args, "v")
		} else {
			args = append(args, "s."+f.Name)
		}
	}

	return strings.Join(args, ", ")
}

// Filename returns the generated file name for a type, e.g. "user_lenses.go"
// for User.
func Filename(typeName string) string {
	return snakeCase(typeName) + "_lenses.go"
}

func snakeCase(s string) string {
	var b strings.Builder

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
