package utils

// Assign copies *v into dst when v is set.
func Assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// AssignPath copies the path behind v into dst when v is set.
// An empty path clears dst.
func AssignPath(dst **string, v *string) {
	if v == nil {
		return
	}

	if *v == "" {
		*dst = nil
		return
	}

	path := *v
	*dst = &path
}

// AssignOptional copies the value behind v into dst when v is set.
// A zero value clears dst.
func AssignOptional[T comparable](dst **T, v *T) {
	if v == nil {
		return
	}

	var zero T
	if *v == zero {
		*dst = nil
		return
	}

	value := *v
	*dst = &value
}

// Equal reports whether a and b are both nil or point at equal values.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
