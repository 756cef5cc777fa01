// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.
//
// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package collections

// Map converts every value of a slice.
func Map[T any, V any](in []T, f func(T) V) []V {
	out := make([]V, 0, len(in))
	for _, inVal := range in {
		out = append(out, f(inVal))
	}
	return out
}

// FilterMap returns a slice of values converted from type T to type V using the provided
// mapping function. Values for which the mapping function returned false are dropped.
func FilterMap[T any, V any](in []T, f func(T) (V, bool)) []V {
	out := make([]V, 0)
	for _, inVal := range in {
		outVal, ok := f(inVal)
		if ok {
			out = append(out, outVal)
		}
	}
	return out
}

// Filter keeps the elements for which the condition is true.
func Filter[T any, F func(T) bool](slice []T, f F) []T {
	res := make([]T, 0)
	for _, t := range slice {
		if f(t) {
			res = append(res, t)
		}
	}
	return res
}

// CountBy counts the elements of a slice per key.
func CountBy[T any, K comparable](slice []T, key func(T) K) map[K]int64 {
	counts := make(map[K]int64)
	for _, t := range slice {
		counts[key(t)]++
	}
	return counts
}
