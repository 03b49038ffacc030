package lens

// Field is a typed key naming one field of S whose focus has type T. The
// focus type never appears in the stored data; it rides along on the key so
// that Lookup is checked at compile time against the lens it resolves to.
type Field[S, T any] struct {
	name string
}

// NewField creates a field key. Generated code creates one key per public
// field, alongside the lens registered under the same name.
func NewField[S, T any](name string) Field[S, T] {
	return Field[S, T]{name: name}
}

// Name returns the field name the key refers to.
func (f Field[S, T]) Name() string {
	return f.name
}

// Registry maps field names to lenses for a single source type S. It is
// populated once by generated code and read-only afterwards, so concurrent
// lookups need no locking.
type Registry[S any] struct {
	names  []string
	byName map[string]any
}

// RegistryEntry is a single name-to-lens association for NewRegistry.
type RegistryEntry[S any] struct {
	name string
	lens any
}

// Entry associates a field key with its lens.
func Entry[S, T any](key Field[S, T], l Lens[S, T]) RegistryEntry[S] {
	return RegistryEntry[S]{name: key.Name(), lens: l}
}

// NewRegistry builds a registry from entries, preserving registration order.
// A duplicate name keeps the first entry.
func NewRegistry[S any](entries ...RegistryEntry[S]) *Registry[S] {
	r := &Registry[S]{byName: make(map[string]any, len(entries))}

	for _, e := range entries {
		if _, dup := r.byName[e.name]; dup {
			continue
		}

		r.names = append(r.names, e.name)
		r.byName[e.name] = e.lens
	}

	return r
}

// Len returns the number of registered fields.
func (r *Registry[S]) Len() int {
	return len(r.names)
}

// FieldNames returns the registered field names in registration order.
func (r *Registry[S]) FieldNames() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// Contains reports whether a field name is registered.
func (r *Registry[S]) Contains(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Lookup resolves a field key to its lens. The second result is false when
// no field with that name is registered, or when the key's focus type does
// not match the registered lens. Keys produced by generated code always
// match, so for them a miss means only an unknown name.
func Lookup[S, T any](r *Registry[S], key Field[S, T]) (Lens[S, T], bool) {
	v, ok := r.byName[key.Name()]
	if !ok {
		var zero Lens[S, T]
		return zero, false
	}

	l, ok := v.(Lens[S, T])

	return l, ok
}
