package lens_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/lens"
)

type address struct {
	Street string
	City   string
}

type person struct {
	Name    string
	Age     int
	Home    address
	Display string // kept in sync with Name by displayLens's setter
}

var (
	nameLens = lens.New(
		func(p person) string { return p.Name },
		func(p person, v string) person {
			p.Name = v
			return p
		},
	)

	ageLens = lens.New(
		func(p person) int { return p.Age },
		func(p person, v int) person {
			p.Age = v
			return p
		},
	)

	homeLens = lens.New(
		func(p person) address { return p.Home },
		func(p person, v address) person {
			p.Home = v
			return p
		},
	)

	streetLens = lens.New(
		func(a address) string { return a.Street },
		func(a address, v string) address {
			a.Street = v
			return a
		},
	)

	cityLens = lens.New(
		func(a address) string { return a.City },
		func(a address, v string) address {
			a.City = v
			return a
		},
	)
)

func samplePerson() person {
	return person{
		Name:    "Ada",
		Age:     36,
		Home:    address{Street: "Baker St", City: "London"},
		Display: "Ada",
	}
}

func TestLens_GetSetRoundTrip(t *testing.T) {
	p := samplePerson()

	updated := nameLens.Set(p, "Grace")
	assert.Equal(t, "Grace", nameLens.Get(updated))

	// get(set(s, get(s))) == get(s)
	assert.Equal(t, nameLens.Get(p), nameLens.Get(nameLens.Set(p, nameLens.Get(p))))
}

func TestLens_SetWithCurrentValueIsIdentity(t *testing.T) {
	p := samplePerson()

	assert.Equal(t, p, nameLens.Set(p, nameLens.Get(p)))
	assert.Equal(t, p, ageLens.Set(p, ageLens.Get(p)))
	assert.Equal(t, p, homeLens.Set(p, homeLens.Get(p)))
}

func TestLens_SetDoesNotMutateSource(t *testing.T) {
	p := samplePerson()
	original := p

	_ = nameLens.Set(p, "Grace")
	assert.Equal(t, original, p, "source value must not change")
}

func TestLens_Modify(t *testing.T) {
	p := samplePerson()

	older := ageLens.Modify(p, func(a int) int { return a + 1 })
	assert.Equal(t, 37, older.Age)
	assert.Equal(t, 36, p.Age)
}

func TestLens_Lift(t *testing.T) {
	shout := nameLens.Lift(strings.ToUpper)

	p := shout(samplePerson())
	assert.Equal(t, "ADA", p.Name)
}

func TestCompose_FocusesNestedField(t *testing.T) {
	personStreet := lens.Compose(homeLens, streetLens)

	p := samplePerson()
	assert.Equal(t, "Baker St", personStreet.Get(p))

	moved := personStreet.Set(p, "Downing St")
	assert.Equal(t, "Downing St", moved.Home.Street)
	assert.Equal(t, "London", moved.Home.City, "untouched sibling field survives")
	assert.Equal(t, "Baker St", p.Home.Street)
}

func TestCompose_Associativity(t *testing.T) {
	type root struct{ P person }

	pLens := lens.New(
		func(r root) person { return r.P },
		func(r root, v person) root {
			r.P = v
			return r
		},
	)

	left := lens.Compose(lens.Compose(pLens, homeLens), cityLens)
	right := lens.Compose(pLens, lens.Compose(homeLens, cityLens))

	r := root{P: samplePerson()}

	assert.Equal(t, left.Get(r), right.Get(r))
	assert.Equal(t, left.Set(r, "Paris"), right.Set(r, "Paris"))
}

func TestConcat_GetReturnsBothFoci(t *testing.T) {
	both := lens.Concat(nameLens, ageLens)

	got := both.Get(samplePerson())
	assert.Equal(t, "Ada", got.First)
	assert.Equal(t, 36, got.Second)

	name, age := got.Values()
	assert.Equal(t, "Ada", name)
	assert.Equal(t, 36, age)
}

func TestConcat_SetAppliesBothSetters(t *testing.T) {
	both := lens.Concat(nameLens, ageLens)

	p := both.Set(samplePerson(), lens.MakePair("Grace", 41))
	assert.Equal(t, "Grace", p.Name)
	assert.Equal(t, 41, p.Age)
}

func TestConcat_SetOrderIsFirstThenSecond(t *testing.T) {
	// displayLens derives Display from Name, so its setter interacts with
	// nameLens's. Concat must apply the first setter, then the second
	// against that intermediate result.
	displayLens := lens.New(
		func(p person) string { return p.Display },
		func(p person, v string) person {
			p.Display = v + " (" + p.Name + ")"
			return p
		},
	)

	p := samplePerson()
	want := displayLens.Set(nameLens.Set(p, "Grace"), "Dr")

	got := lens.Concat(nameLens, displayLens).Set(p, lens.MakePair("Grace", "Dr"))
	require.Equal(t, want, got)
	assert.Equal(t, "Dr (Grace)", got.Display)

	// The reverse order would have captured the old name.
	reversed := nameLens.Set(displayLens.Set(p, "Dr"), "Grace")
	assert.NotEqual(t, reversed, got)
}
