package rearrange

import (
	"errors"
	"sort"
)

// ErrNotPermutation is returned by Inverse when the ordering does not use
// every index in 0..len-1 exactly once.
var ErrNotPermutation = errors.New("ordering is not a permutation")

// Identity returns the ordering that leaves all n tiles in place.
func Identity(n int) []int {
	ordering := make([]int, n)
	for idx := range ordering {
		ordering[idx] = idx
	}
	return ordering
}

// Inverse returns the ordering that undoes ordering. Rearranging an image
// with ordering and then with its inverse gives back the original image.
func Inverse(ordering []int) ([]int, error) {
	inverse := make([]int, len(ordering))
	seen := make([]bool, len(ordering))
	for destIndex, sourceIndex := range ordering {
		if sourceIndex < 0 || sourceIndex >= len(ordering) || seen[sourceIndex] {
			return nil, ErrNotPermutation
		}
		seen[sourceIndex] = true
		inverse[sourceIndex] = destIndex
	}
	return inverse, nil
}

// shuffledItem pairs a tile index with the random key it is sorted by.
type shuffledItem struct {
	randomValue uint32
	index       int
}

// Shuffle returns a pseudo-random permutation of n tiles. The same seed
// always produces the same permutation.
func Shuffle(seed uint32, n int) []int {
	prng := newXorShift32(seed)
	items := make([]shuffledItem, n)
	for idx := range items {
		items[idx] = shuffledItem{
			randomValue: prng.next(),
			index:       idx,
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].randomValue < items[j].randomValue
	})

	shuffled := make([]int, n)
	for idx, item := range items {
		shuffled[idx] = item.index
	}
	return shuffled
}
