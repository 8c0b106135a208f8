package kind

// Of returns the kind of the builtin integer type T, or Invalid when T is not a
// lattice type. Named types do not match: convert to the underlying type first.
func Of[T any]() Kind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uint:
		return Uint
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	}
	return Invalid
}
