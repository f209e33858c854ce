package iterkit

// Fill assigns v to every element of the sequence.
func Fill[T, E any](seq Sequence[T, *E], v E) {
	for ptr := range Values(seq) {
		*ptr = v
	}
}

// Copy assigns the values of src to the elements of dst, element by element.
// The two sequences must have the same length.
func Copy[T1, T2, E any](src Sequence[T1, E], dst Sequence[T2, *E]) {
	CopyFunc(src, dst, func(v E) E { return v })
}

// CopyFunc assigns transform(v) for each value of src to the matching element of dst.
// The two sequences must have the same length.
func CopyFunc[T1, T2, From, To any](src Sequence[T1, From], dst Sequence[T2, *To], transform func(From) To) {
	for from, to := range Pairs(Zip(src, dst)) {
		*to = transform(from)
	}
}

// Found returns a pointer to the result of a comma-ok lookup, or nil when nothing was found.
//
//	v, ok := m[key]
//	if p := iterkit.Found(v, ok); p != nil {
//		// ...
//	}
func Found[V any](v V, ok bool) *V {
	if !ok {
		return nil
	}
	return &v
}

// Find looks up key in m and returns a pointer to the value, or nil when the key is absent.
// Map values are not addressable in Go, so the pointer refers to the looked up value.
// For pointer valued maps, the pointed value is the stored one.
//
//	if v := iterkit.Find(m, key); v != nil {
//		// ...
//	}
func Find[M ~map[K]V, K comparable, V any](m M, key K) *V {
	v, ok := m[key]
	return Found(v, ok)
}

// EraseIfFound removes key from m and reports whether there was an entry to remove.
func EraseIfFound[M ~map[K]V, K comparable, V any](m M, key K) bool {
	if _, ok := m[key]; !ok {
		return false
	}
	delete(m, key)
	return true
}
