package analysis

import (
	"slices"
	"sort"

	"github.com/Rashmi-kavindya/RubiksCube"
)

// NGram represents a repeated move sequence.
type NGram struct {
	Sequence   []rubikscube.Move `json:"sequence"`
	Count      int               `json:"count"`
	FirstIndex int               `json:"first_index"`
}

// rollingHash implements a Rabin-Karp rolling hash over move values.
type rollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []rubikscube.Move
	n      int
}

func newRollingHash(n int) *rollingHash {
	rh := &rollingHash{
		base:   31,
		n:      n,
		window: make([]rubikscube.Move, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// roll adds m, dropping the oldest move once the window is full.
func (rh *rollingHash) roll(m rubikscube.Move) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, m)
		rh.hash = rh.hash*rh.base + uint64(m)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(m)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = m
}

func (rh *rollingHash) ready() bool {
	return len(rh.window) == rh.n
}

// MineNGrams returns, for each n in [minN, maxN], the topK sequences of n
// turns that occur at least twice, most frequent first.
func MineNGrams(turns []rubikscube.Move, minN, maxN, topK int) map[int][]NGram {
	report := make(map[int][]NGram)
	for n := minN; n <= maxN && n <= len(turns); n++ {
		if ngrams := mineN(turns, n, topK); len(ngrams) > 0 {
			report[n] = ngrams
		}
	}
	return report
}

func mineN(turns []rubikscube.Move, n, topK int) []NGram {
	type entry struct {
		seq   []rubikscube.Move
		count int
		first int
	}
	// Buckets per hash handle collisions.
	counts := make(map[uint64][]*entry)
	var order []*entry

	rh := newRollingHash(n)
	for i, m := range turns {
		rh.roll(m)
		if !rh.ready() {
			continue
		}

		h := rh.hash
		found := false
		for _, e := range counts[h] {
			if slices.Equal(e.seq, rh.window) {
				e.count++
				found = true
				break
			}
		}
		if !found {
			e := &entry{seq: slices.Clone(rh.window), count: 1, first: i - n + 1}
			counts[h] = append(counts[h], e)
			order = append(order, e)
		}
	}

	var repeated []*entry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		result[i] = NGram{Sequence: e.seq, Count: e.count, FirstIndex: e.first}
	}
	return result
}
