package query

import (
	"cmp"
	"slices"
)

// Number is the set of types Sum, Mean and Ratio operate on.
type Number interface {
	~int | ~int64 | ~float64
}

// Filter returns the elements of xs for which keep returns true.
func Filter[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Map applies fn to every element of xs.
func Map[T, V any](xs []T, fn func(T) V) []V {
	out := make([]V, len(xs))
	for i, x := range xs {
		out[i] = fn(x)
	}
	return out
}

// FlatMap applies fn to every element of xs and concatenates the results.
func FlatMap[T, V any](xs []T, fn func(T) []V) []V {
	out := make([]V, 0, len(xs))
	for _, x := range xs {
		out = append(out, fn(x)...)
	}
	return out
}

// Distinct drops repeated values, keeping the first occurrence of each.
func Distinct[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Count returns how many elements of xs satisfy pred.
func Count[T any](xs []T, pred func(T) bool) int {
	n := 0
	for _, x := range xs {
		if pred(x) {
			n++
		}
	}
	return n
}

// Sum adds fn(x) over xs. The sum of an empty slice is 0.
func Sum[T any, N Number](xs []T, fn func(T) N) N {
	var total N
	for _, x := range xs {
		total += fn(x)
	}
	return total
}

// Mean returns the arithmetic mean of fn(x) over xs.
func Mean[T any, N Number](xs []T, fn func(T) N) (float64, error) {
	if len(xs) == 0 {
		return 0, &EmptyInputError{Op: "mean"}
	}
	return float64(Sum(xs, fn)) / float64(len(xs)), nil
}

// Ratio divides num by den. A zero denominator is reported as an
// EmptyInputError naming op.
func Ratio[N, D Number](num N, den D, op string) (float64, error) {
	if den == 0 {
		return 0, &EmptyInputError{Op: op}
	}
	return float64(num) / float64(den), nil
}

// MaxBy returns the element with the largest key. Ties go to the element
// seen first.
func MaxBy[T any, K cmp.Ordered](xs []T, key func(T) K) (T, error) {
	var best T
	if len(xs) == 0 {
		return best, &EmptyInputError{Op: "max"}
	}
	best = xs[0]
	bestKey := key(best)
	for _, x := range xs[1:] {
		if k := key(x); k > bestKey {
			best, bestKey = x, k
		}
	}
	return best, nil
}

// SortedBy returns a stably sorted copy of xs ordered by cmp.
func SortedBy[T any](xs []T, cmp func(a, b T) int) []T {
	out := slices.Clone(xs)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, cmp)
	return out
}

// Ascending builds a comparator ordering by key, smallest first.
func Ascending[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Descending builds a comparator ordering by key, largest first.
func Descending[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}
