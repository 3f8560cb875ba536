// internal/utils/math.go
package utils

import "cmp"

// Clamp ограничивает v отрезком [lo, hi]. При lo > hi возвращает lo.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
