package lens

// Lens focuses a single field of type T within a source value of type S.
// It holds two pure functions and no other state, so a Lens value is
// immutable and safe to share across goroutines.
type Lens[S, T any] struct {
	get func(S) T
	set func(S, T) S
}

// New creates a Lens from a getter and a setter.
//
// The setter must return a new S and leave its input untouched. For a
// well-behaved lens both laws hold:
//
//	l.Get(l.Set(s, t)) == t
//	l.Set(s, l.Get(s)) == s
func New[S, T any](get func(S) T, set func(S, T) S) Lens[S, T] {
	return Lens[S, T]{get: get, set: set}
}

// Get returns the focused value within s.
func (l Lens[S, T]) Get(s S) T {
	return l.get(s)
}

// Set returns a copy of s with the focused field replaced by t.
func (l Lens[S, T]) Set(s S, t T) S {
	return l.set(s, t)
}

// Modify returns a copy of s with f applied to the focused field.
func (l Lens[S, T]) Modify(s S, f func(T) T) S {
	return l.set(s, f(l.get(s)))
}

// Lift curries Modify into a whole-value transformer.
func (l Lens[S, T]) Lift(f func(T) T) func(S) S {
	return func(s S) S {
		return l.Modify(s, f)
	}
}

// Compose chains two lenses sequentially: the result focuses A inside the T
// that outer focuses inside S. Composition is associative.
func Compose[S, T, A any](outer Lens[S, T], inner Lens[T, A]) Lens[S, A] {
	return Lens[S, A]{
		get: func(s S) A {
			return inner.get(outer.get(s))
		},
		set: func(s S, a A) S {
			return outer.set(s, inner.set(outer.get(s), a))
		},
	}
}

// Concat pairs two lenses sharing the same source. Get returns both foci;
// Set applies a's setter first and b's setter to the result.
//
// The order matters: when the two setters interact (one field is derived
// from the other), the outcome is a-then-b, not the reverse. Concat does not
// attempt to detect or resolve such overlap.
func Concat[S, T, A any](a Lens[S, T], b Lens[S, A]) Lens[S, Pair[T, A]] {
	return Lens[S, Pair[T, A]]{
		get: func(s S) Pair[T, A] {
			return MakePair(a.get(s), b.get(s))
		},
		set: func(s S, p Pair[T, A]) S {
			return b.set(a.set(s, p.First), p.Second)
		},
	}
}
