package pulse

import "unsafe"

func AsByteSlice[T any](value *T) []byte {
	var zeroT T

	n := unsafe.Sizeof(zeroT)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}

// SliceAsBytes reinterprets the backing array of values as bytes.
// The returned slice aliases values.
func SliceAsBytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zeroT T

	n := uintptr(len(values)) * unsafe.Sizeof(zeroT)
	ptr := (*byte)(unsafe.Pointer(&values[0]))

	return unsafe.Slice(ptr, n)
}
