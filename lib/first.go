package lib

// First returns first of two values, usually dropping error
func First[T any, U any](t T, _ U) T {
	return t
}
