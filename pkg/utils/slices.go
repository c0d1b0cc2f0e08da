package utils

func RemoveDuplicates[T comparable](in []T) []T {
	seen := make(map[T]bool)
	out := []T{}
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// Deref collects the non-nil, non-zero values behind the given pointers.
func Deref[T comparable](in ...*T) []T {
	var zero T
	out := make([]T, 0, len(in))
	for _, v := range in {
		if v != nil && *v != zero {
			out = append(out, *v)
		}
	}
	return out
}
