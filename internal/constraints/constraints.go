package constraints

type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of types a cursor can be stepped over with arithmetic.
type Integer interface {
	Int | UInt
}
