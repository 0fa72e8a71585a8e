// --- syntour/internal/tour/unsafe.go ---

package tour

import "unsafe"

// firstUnchecked reads arr[0] through a raw pointer.
//
// Precondition: the backing array is non-empty. A [3]int32 always is, which
// is why the parameter is a fixed-size array and not a slice.
func firstUnchecked(arr *[3]int32) int32 {
	ptr := unsafe.Pointer(&arr[0])
	return *(*int32)(ptr)
}

// First is the bounds-checked accessor. Prefer it to firstUnchecked.
func First[T any](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}
	return s[0], true
}

func stepUnsafe(env *Env) error {
	array := [3]int32{1, 2, 3}
	env.printf("First element: %d\n", firstUnchecked(&array))
	return nil
}
