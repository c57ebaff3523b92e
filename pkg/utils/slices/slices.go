package slices

// Map converts each element of sli with mapper.
//
// The element at index N of the result is mapper(sli[N]).
func Map[T any, R any](sli []T, mapper func(v T) R) []R {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		ret[nth] = mapper(v)
	}
	return ret
}

// MapUntilError maps over sli with mapper.
//
// If mapper causes error, it stops there and returns (nil, error).
// Otherwise, it returns (mapping result, nil).
func MapUntilError[T any, R any](sli []T, mapper func(v T) (R, error)) ([]R, error) {
	ret := make([]R, len(sli))
	for nth, v := range sli {
		r, err := mapper(v)
		if err != nil {
			return nil, err
		}
		ret[nth] = r
	}
	return ret, nil
}

// Filter picks elements matching predicate, keeping their order.
func Filter[T any](sli []T, predicate func(v T) bool) []T {
	ret := []T{}
	for _, v := range sli {
		if predicate(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

// First finds the first element matching predicate.
//
// When found, it returns (the element, true). Otherwise (zero-value, false).
func First[T any](sli []T, predicate func(v T) bool) (T, bool) {
	for _, v := range sli {
		if predicate(v) {
			return v, true
		}
	}
	return *new(T), false
}

// Contains tells whether any element matches predicate.
func Contains[T any](sli []T, predicate func(v T) bool) bool {
	_, ok := First(sli, predicate)
	return ok
}

// ToMap converts a slice to a map keyed with getkey.
//
// If keys collide, a later element takes over an earlier one.
func ToMap[T any, K comparable](sli []T, getkey func(v T) K) map[K]T {
	m := map[K]T{}
	for _, v := range sli {
		m[getkey(v)] = v
	}
	return m
}

// KeysOf flattens a map to the slice of its keys. Order is not defined.
func KeysOf[K comparable, T any](m map[K]T) []K {
	sli := make([]K, 0, len(m))
	for k := range m {
		sli = append(sli, k)
	}
	return sli
}

// ValuesOf flattens a map to the slice of its values. Order is not defined.
func ValuesOf[K comparable, T any](m map[K]T) []T {
	sli := make([]T, 0, len(m))
	for _, v := range m {
		sli = append(sli, v)
	}
	return sli
}
