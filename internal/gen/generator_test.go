package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/internal/plan"
	"lens-generator/internal/schema"
)

func sampleDecl() *schema.Decl {
	return &schema.Decl{
		Name:    "Sample",
		Kind:    schema.KindStruct,
		Package: "demo",
		Members: []schema.Member{
			{Names: schema.NameList{"Name"}, Type: "string", Visibility: schema.VisibilityPublic},
			{Names: schema.NameList{"age"}, Type: "int"},
			{Names: schema.NameList{"Active"}, Type: "bool", Visibility: schema.VisibilityPublic},
		},
	}
}

func derive(t *testing.T, d *schema.Decl) *plan.Plan {
	t.Helper()

	p, diags := plan.Derive(d)
	require.NotNil(t, p)
	require.True(t, diags.IsValid())

	return p
}

func TestGenerate_EmitsAllSections(t *testing.T) {
	g := NewGenerator(DefaultConfig())

	file, err := g.Generate(derive(t, sampleDecl()))
	require.NoError(t, err)

	assert.Equal(t, "sample_lenses.go", file.Filename)

	content := string(file.Content)
	assert.True(t, strings.HasPrefix(content, "// Code generated by lens-generator. DO NOT EDIT."))
	assert.Contains(t, content, "package demo")
	assert.Contains(t, content, `"lens-generator/lens"`)

	// Section order: accessor, constructor, lens namespace, keys, registry.
	accessor := strings.Index(content, "func SampleLens[T any]")
	ctor := strings.Index(content, "func newSampleAll(name string, age int, active bool) Sample")
	lenses := strings.Index(content, "var SampleLenses = struct {")
	fields := strings.Index(content, "var SampleFields = struct {")
	registry := strings.Index(content, "var SampleRegistry = lens.NewRegistry[Sample](")

	for _, idx := range []int{accessor, ctor, lenses, fields, registry} {
		require.GreaterOrEqual(t, idx, 0, "missing section in:\n%s", content)
	}

	assert.Less(t, accessor, ctor)
	assert.Less(t, ctor, lenses)
	assert.Less(t, lenses, fields)
	assert.Less(t, fields, registry)
}

func TestGenerate_SetterRoutesThroughConstructor(t *testing.T) {
	g := NewGenerator(DefaultConfig())

	file, err := g.Generate(derive(t, sampleDecl()))
	require.NoError(t, err)

	content := string(file.Content)

	// The focused field gets the new value; every other field is read from
	// the current whole.
	assert.Contains(t, content, "return newSampleAll(v, s.age, s.Active)")
	assert.Contains(t, content, "return newSampleAll(s.Name, s.age, v)")
}

func TestGenerate_ReusedConstructorEmitsNothingNew(t *testing.T) {
	d := sampleDecl()
	d.Initializers = []schema.Initializer{
		{
			Name: "NewSample",
			Params: []schema.Param{
				{Name: "name", Type: "string"},
				{Name: "age", Type: "int"},
				{Name: "active", Type: "bool"},
			},
		},
	}

	g := NewGenerator(DefaultConfig())

	file, err := g.Generate(derive(t, d))
	require.NoError(t, err)

	content := string(file.Content)
	assert.NotContains(t, content, "newSampleAll", "no duplicate constructor")
	assert.Contains(t, content, "return NewSample(v, s.age, s.Active)", "setters call the reused initializer")
}

func TestGenerate_CaseCollidingFields(t *testing.T) {
	d := &schema.Decl{
		Name:    "Clash",
		Kind:    schema.KindStruct,
		Package: "demo",
		Members: []schema.Member{
			{Names: schema.NameList{"Name"}, Type: "string", Visibility: schema.VisibilityPublic},
			{Names: schema.NameList{"name"}, Type: "string"},
		},
	}

	g := NewGenerator(DefaultConfig())

	file, err := g.Generate(derive(t, d))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "func newClashAll(name string, name2 string) Clash")
	assert.Contains(t, content, "return newClashAll(v, s.name)")
}

func TestGenerate_Deterministic(t *testing.T) {
	g := NewGenerator(DefaultConfig())

	first, err := g.Generate(derive(t, sampleDecl()))
	require.NoError(t, err)

	second, err := g.Generate(derive(t, sampleDecl()))
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content, "byte-identical output for identical input")
}

func TestGenerate_FieldTypeImports(t *testing.T) {
	d := sampleDecl()
	d.Imports = []string{"time"}
	d.Members = append(d.Members, schema.Member{
		Names: schema.NameList{"Created"}, Type: "time.Time", Visibility: schema.VisibilityPublic,
	})

	g := NewGenerator(DefaultConfig())

	file, err := g.Generate(derive(t, d))
	require.NoError(t, err)

	content := string(file.Content)
	assert.Contains(t, content, "\"time\"")
	assert.Contains(t, content, "lens.Lens[Sample, time.Time]")
}

func TestGenerate_NoPublicFields(t *testing.T) {
	d := &schema.Decl{
		Name:    "Opaque",
		Kind:    schema.KindStruct,
		Package: "demo",
		Members: []schema.Member{
			{Names: schema.NameList{"secret"}, Type: "string"},
		},
	}

	g := NewGenerator(DefaultConfig())

	file, err := g.Generate(derive(t, d))
	require.NoError(t, err, "zero lenses still formats")

	content := string(file.Content)
	assert.Contains(t, content, "func newOpaqueAll(secret string) Opaque")
	assert.Contains(t, content, "lens.NewRegistry[Opaque]()")
}

func TestGenerate_MissingPackageName(t *testing.T) {
	d := sampleDecl()
	d.Package = ""

	g := NewGenerator(DefaultConfig())

	_, err := g.Generate(derive(t, d))
	require.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "user_lenses.go", Filename("User"))
	assert.Equal(t, "user_profile_lenses.go", Filename("UserProfile"))
}
