package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"sort"

	"golang.org/x/tools/go/packages"

	"lens-generator/internal/common"
	"lens-generator/internal/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and lowers named types to declarations.
type Analyzer struct {
	decls []*schema.Decl
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages and returns one declaration per
// exported named type, in package path then declaration-name order.
// Patterns are standard Go package patterns (e.g., "./examples/basic").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*schema.Decl, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.decls, nil
}

// Decls returns the declarations collected so far.
func (a *Analyzer) Decls() []*schema.Decl {
	return a.decls
}

// GetDecl returns the declaration for a type by name, or nil if not loaded.
func (a *Analyzer) GetDecl(name string) *schema.Decl {
	for _, d := range a.decls {
		if d.Name == name {
			return d
		}
	}

	return nil
}

// processPackage extracts declarations from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	dir := packageDir(pkg)
	inits := collectInitializers(pkg)

	scope := pkg.Types.Scope()

	names := scope.Names()
	sort.Strings(names)

	for _, name := range names {
		obj := scope.Lookup(name)

		// Only process type names (not variables, constants, functions).
		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		if !typeName.Exported() {
			continue
		}

		decl := &schema.Decl{
			Name:    name,
			Package: pkg.Name,
			PkgPath: pkg.PkgPath,
			Dir:     dir,
		}

		if st, ok := typeName.Type().Underlying().(*types.Struct); ok {
			decl.Kind = schema.KindStruct
			lowerStructFields(pkg, st, decl)
			decl.Initializers = inits[name]
		} else {
			decl.Kind = declKind(typeName.Type().Underlying())
		}

		a.decls = append(a.decls, decl)
	}

	return nil
}

// declKind classifies a non-struct underlying type so rejection diagnostics
// can name the actual declaration kind.
func declKind(t types.Type) schema.DeclKind {
	switch t.(type) {
	case *types.Interface:
		return schema.KindInterface
	case *types.Signature:
		return schema.KindFunc
	case *types.Basic, *types.Slice, *types.Map, *types.Pointer, *types.Array, *types.Chan:
		return schema.KindAlias
	default:
		return schema.KindUnknown
	}
}

// lowerStructFields converts struct fields into declaration members, in
// declaration order. go/types has already resolved every field type, so the
// unresolved-type path never triggers for Go input.
func lowerStructFields(pkg *packages.Package, st *types.Struct, decl *schema.Decl) {
	r := newTypeRenderer(pkg)

	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		tag := reflect.StructTag(st.Tag(i))

		vis, keep := fieldVisibility(field, tag)
		if !keep {
			continue
		}

		decl.Members = append(decl.Members, schema.Member{
			Names:      schema.NameList{field.Name()},
			Type:       r.render(field.Type()),
			Visibility: vis,
		})
	}

	decl.Imports = r.imports()
}

// fieldVisibility maps Go exportedness and the lens struct tag to a
// visibility tier. The second result is false for fields opted out with
// `lens:"-"`.
func fieldVisibility(field *types.Var, tag reflect.StructTag) (schema.Visibility, bool) {
	switch tag.Get("lens") {
	case "-":
		return schema.VisibilityPrivate, false
	case "internal":
		return schema.VisibilityInternal, true
	}

	if field.Exported() {
		return schema.VisibilityPublic, true
	}

	return schema.VisibilityPrivate, true
}

// collectInitializers gathers package-level functions returning exactly one
// value of a named type declared in the package, keyed by that type name.
func collectInitializers(pkg *packages.Package) map[string][]schema.Initializer {
	out := make(map[string][]schema.Initializer)

	scope := pkg.Types.Scope()

	names := scope.Names()
	sort.Strings(names)

	for _, name := range names {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok {
			continue
		}

		sig, ok := fn.Type().(*types.Signature)
		if !ok || sig.Recv() != nil || sig.TypeParams() != nil {
			continue
		}

		if sig.Results().Len() != 1 {
			continue
		}

		named, ok := sig.Results().At(0).Type().(*types.Named)
		if !ok || named.Obj().Pkg() != pkg.Types {
			continue
		}

		r := newTypeRenderer(pkg)

		init := schema.Initializer{Name: fn.Name()}
		for i := 0; i < sig.Params().Len(); i++ {
			p := sig.Params().At(i)
			init.Params = append(init.Params, schema.Param{
				Name: p.Name(),
				Type: r.render(p.Type()),
			})
		}

		typeName := named.Obj().Name()
		out[typeName] = append(out[typeName], init)
	}

	return out
}

// packageDir returns the directory holding the package sources.
func packageDir(pkg *packages.Package) string {
	first, ok := common.First(pkg.GoFiles)
	if !ok {
		return ""
	}

	return filepath.Dir(first)
}

// typeRenderer renders go/types types as source expressions relative to the
// declaring package, recording imports needed for cross-package references.
type typeRenderer struct {
	pkg  *packages.Package
	need map[string]struct{}
}

func newTypeRenderer(pkg *packages.Package) *typeRenderer {
	return &typeRenderer{pkg: pkg, need: make(map[string]struct{})}
}

func (r *typeRenderer) render(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == r.pkg.Types {
			return ""
		}

		r.need[p.Path()] = struct{}{}

		return p.Name()
	})
}

func (r *typeRenderer) imports() []string {
	if len(r.need) == 0 {
		return nil
	}

	out := make([]string, 0, len(r.need))
	for path := range r.need {
		out = append(out, path)
	}

	sort.Strings(out)

	return out
}
