package layout

import (
	"sort"

	"github.com/jsphweid/barsim/distance"
	"github.com/jsphweid/barsim/util"
)

// Hierarchy is a nested encoding of immediate repetitions. A leaf holds a
// run of items without repetition; otherwise Seq is repeated Rep times,
// preceded by Pre and followed by Post (both optional).
type Hierarchy struct {
	Items []int

	Pre  *Hierarchy
	Seq  *Hierarchy
	Rep  int
	Post *Hierarchy
}

func (h *Hierarchy) IsLeaf() bool {
	return h.Seq == nil
}

// Len is the number of items h decompresses to.
func (h *Hierarchy) Len() int {
	if h == nil {
		return 0
	}
	if h.IsLeaf() {
		return len(h.Items)
	}
	return h.Pre.Len() + h.Rep*h.Seq.Len() + h.Post.Len()
}

// RepeatedIndices maps every item to the first item equal to it.
func RepeatedIndices(n int, equal func(a, b int) bool) []int {
	res := make([]int, n)
	for i := 0; i < n; i++ {
		res[i] = i
		for k := 0; k < i; k++ {
			if res[k] == k && equal(k, i) {
				res[i] = k
				break
			}
		}
	}
	return res
}

func equalRuns(seq []int, a, b, length int) bool {
	for i := 0; i < length; i++ {
		if seq[a+i] != seq[b+i] {
			return false
		}
	}
	return true
}

// Compress finds the immediate repetition covering the most items (the
// earliest, then the shortest unit on ties) and recurses into the parts
// before, inside and after it.
func Compress(seq []int) *Hierarchy {
	n := len(seq)
	bestStart, bestLength, bestRep := 0, 0, 1
	for length := 1; 2*length <= n; length++ {
		for start := 0; start+2*length <= n; start++ {
			rep := 1
			for start+(rep+1)*length <= n && equalRuns(seq, start, start+rep*length, length) {
				rep++
			}
			if rep < 2 {
				continue
			}
			covered := rep * length
			best := bestRep * bestLength
			if bestRep < 2 || covered > best || (covered == best && start < bestStart) {
				bestStart, bestLength, bestRep = start, length, rep
			}
		}
	}

	if bestRep < 2 {
		items := make([]int, n)
		copy(items, seq)
		return &Hierarchy{Items: items}
	}

	end := bestStart + bestRep*bestLength
	h := &Hierarchy{
		Seq: Compress(seq[bestStart : bestStart+bestLength]),
		Rep: bestRep,
	}
	if bestStart > 0 {
		h.Pre = Compress(seq[:bestStart])
	}
	if end < n {
		h.Post = Compress(seq[end:])
	}
	return h
}

// Decompress expands h back into the flat item sequence.
func Decompress(h *Hierarchy) []int {
	res := []int{}
	if h == nil {
		return res
	}
	if h.IsLeaf() {
		return append(res, h.Items...)
	}
	res = append(res, Decompress(h.Pre)...)
	unit := Decompress(h.Seq)
	for r := 0; r < h.Rep; r++ {
		res = append(res, unit...)
	}
	return append(res, Decompress(h.Post)...)
}

// label returns a copy of h where every run of items is replaced by a new
// cluster id. Below depth (if positive) whole subtrees count as one run.
func label(h *Hierarchy, level, depth int, next *int) *Hierarchy {
	if h == nil {
		return nil
	}
	if h.IsLeaf() || (depth > 0 && level >= depth) {
		items := make([]int, h.Len())
		for i := range items {
			items[i] = *next
		}
		*next++
		return &Hierarchy{Items: items}
	}
	res := &Hierarchy{Rep: h.Rep}
	res.Pre = label(h.Pre, level+1, depth, next)
	res.Seq = label(h.Seq, level+1, depth, next)
	res.Post = label(h.Post, level+1, depth, next)
	return res
}

// CompressionClusters assigns cluster ids from the repetition hierarchy of
// m, where items at distance 0 count as equal. Even ids are shifted past the
// largest id so that neighbouring clusters get far apart colors.
func CompressionClusters(m distance.Matrix, depth int) []int {
	if len(m) == 0 {
		return []int{}
	}
	repeated := RepeatedIndices(len(m), func(a, b int) bool {
		return m[a][b] == 0
	})
	next := 1
	ids := Decompress(label(Compress(repeated), 0, depth, &next))

	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	for i, id := range ids {
		if id%2 == 0 {
			ids[i] = id + max
		}
	}
	return ids
}

// OccurrenceOrder sorts items by how often they occur, i.e. by the number
// of zeros in their row, rarest first. Ties keep item order.
func OccurrenceOrder(m distance.Matrix) []int {
	counts := make([]int, len(m))
	order := make([]int, len(m))
	for i, row := range m {
		order[i] = i
		counts[i] = util.Count(row, 0)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] < counts[order[j]]
	})
	return order
}
