package query

// Set is a membership set of join keys.
type Set[K comparable] map[K]struct{}

// Has reports whether k is in the set.
func (s Set[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// KeySet collects every key produced by keys over xs.
func KeySet[T any, K comparable](xs []T, keys func(T) []K) Set[K] {
	set := make(Set[K])
	for _, x := range xs {
		for _, k := range keys(x) {
			set[k] = struct{}{}
		}
	}
	return set
}

// IndexBy builds a lookup from key to record. When two records share a key
// the first one wins.
func IndexBy[T any, K comparable](xs []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(xs))
	for _, x := range xs {
		k := key(x)
		if _, ok := index[k]; !ok {
			index[k] = x
		}
	}
	return index
}

// Resolve looks up each reference in index, skipping references with no
// matching record.
func Resolve[T any, K comparable](refs []K, index map[K]T) []T {
	out := make([]T, 0, len(refs))
	for _, ref := range refs {
		if x, ok := index[ref]; ok {
			out = append(out, x)
		}
	}
	return out
}

// Join pairs every left record with every right record sharing its key and
// combines each pair. Output follows left order, then right order within a
// key. Records without a partner are dropped.
func Join[L, R, O any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K, combine func(L, R) O) []O {
	index := GroupBy(right, rightKey)
	out := make([]O, 0, len(left))
	for _, l := range left {
		matches, _ := index.Get(leftKey(l))
		for _, r := range matches {
			out = append(out, combine(l, r))
		}
	}
	return out
}

// SemiJoin keeps the left records whose key is in keys.
func SemiJoin[L any, K comparable](left []L, keys Set[K], leftKey func(L) K) []L {
	return Filter(left, func(l L) bool { return keys.Has(leftKey(l)) })
}

// AntiJoin keeps the left records whose key is not in keys.
func AntiJoin[L any, K comparable](left []L, keys Set[K], leftKey func(L) K) []L {
	return Filter(left, func(l L) bool { return !keys.Has(leftKey(l)) })
}
