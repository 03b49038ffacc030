package lens

// Pair holds the two foci produced by Concat.
type Pair[T, A any] struct {
	First  T
	Second A
}

// MakePair builds a Pair from its two components.
func MakePair[T, A any](first T, second A) Pair[T, A] {
	return Pair[T, A]{First: first, Second: second}
}

// Values unpacks the pair.
func (p Pair[T, A]) Values() (T, A) {
	return p.First, p.Second
}
