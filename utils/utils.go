package utils

// GetZero returns the zero value of T
func GetZero[T any]() T {
	var result T
	return result
}

// InRange reports whether i is a valid index into a sequence of length n
func InRange(i, n int) bool {
	return i >= 0 && i < n
}
