package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetSortedKeys is GetKeys with a stable ascending order.
func GetSortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}

func Sign[A constraints.Signed](num A) A {
	if num < 0 {
		return -1
	}
	return 1
}

// Mod is the floored modulo: the result always has the sign of m.
func Mod[A constraints.Integer](num A, m A) A {
	res := num % m
	if res < 0 {
		res += m
	}
	return res
}

// FloorDiv rounds towards negative infinity, unlike the / operator.
func FloorDiv[A constraints.Integer](num A, d A) A {
	q := num / d
	if (num%d != 0) && ((num < 0) != (d < 0)) {
		q--
	}
	return q
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}
