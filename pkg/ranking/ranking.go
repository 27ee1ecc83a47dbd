// Package ranking implements dense competition ranking: tied entries share a
// rank and the following rank advances by the size of the tie group, so a
// three-way tie for first is followed by rank 4.
package ranking

import "sort"

// Entry wraps one ranked item. Tied is set when the item shares its rank
// with at least one other item.
type Entry[T any] struct {
	Rank int
	Tied bool
	Data T
}

// Rank orders items by score descending and assigns dense competition ranks.
// Scores are grouped by exact float equality; ties must come from genuinely
// identical stored scores, not from rounding. Items with equal scores keep
// their input order. An empty input yields an empty result.
func Rank[T any](items []T, score func(T) float64) []Entry[T] {
	if len(items) == 0 {
		return []Entry[T]{}
	}

	groups := make(map[float64][]T)
	var order []float64
	for _, item := range items {
		s := score(item)
		if _, ok := groups[s]; !ok {
			order = append(order, s)
		}
		groups[s] = append(groups[s], item)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] > order[j] })

	result := make([]Entry[T], 0, len(items))
	currentRank := 1
	for _, s := range order {
		group := groups[s]
		tied := len(group) > 1
		for _, item := range group {
			result = append(result, Entry[T]{Rank: currentRank, Tied: tied, Data: item})
		}
		currentRank += len(group)
	}
	return result
}
