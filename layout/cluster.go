package layout

import (
	"sort"

	"github.com/jsphweid/barsim/distance"
)

// Node is a node of a clustering Tree. Leaves have Left and Right set to -1
// and Index set to the matrix row they stand for.
type Node struct {
	Left   int
	Right  int
	Index  int
	Size   int
	Depth  int
	Height float64
}

func (n Node) IsLeaf() bool {
	return n.Left < 0
}

// Tree is a binary merge tree stored as an arena. The first n nodes are
// the leaves in item order, the last node is the root.
type Tree struct {
	Nodes []Node
}

func (t *Tree) Root() int {
	return len(t.Nodes) - 1
}

// Cluster builds a complete-linkage agglomerative tree over m. The closest
// pair of active clusters is merged first; ties go to the pair that comes
// first in item order, and the earlier cluster becomes the left child.
func Cluster(m distance.Matrix) *Tree {
	n := len(m)
	if n == 0 {
		return nil
	}

	t := &Tree{Nodes: make([]Node, 0, 2*n-1)}
	for i := 0; i < n; i++ {
		t.Nodes = append(t.Nodes, Node{Left: -1, Right: -1, Index: i, Size: 1})
	}

	// d is indexed by slot; slot i starts as item i and holds the cluster
	// that absorbed it
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		copy(d[i], m[i])
	}
	slots := make([]int, n)
	nodeOf := make([]int, n)
	for i := range slots {
		slots[i] = i
		nodeOf[i] = i
	}

	for len(slots) > 1 {
		bestP, bestQ := 0, 1
		best := d[slots[0]][slots[1]]
		for p := 0; p < len(slots); p++ {
			for q := p + 1; q < len(slots); q++ {
				if v := d[slots[p]][slots[q]]; v < best {
					best, bestP, bestQ = v, p, q
				}
			}
		}

		a, b := slots[bestP], slots[bestQ]
		left, right := t.Nodes[nodeOf[a]], t.Nodes[nodeOf[b]]
		depth := left.Depth
		if right.Depth > depth {
			depth = right.Depth
		}
		t.Nodes = append(t.Nodes, Node{
			Left:   nodeOf[a],
			Right:  nodeOf[b],
			Index:  -1,
			Size:   left.Size + right.Size,
			Depth:  depth + 1,
			Height: best,
		})
		nodeOf[a] = len(t.Nodes) - 1

		for _, s := range slots {
			if s == a || s == b {
				continue
			}
			v := d[a][s]
			if d[b][s] > v {
				v = d[b][s]
			}
			d[a][s] = v
			d[s][a] = v
		}
		slots = append(slots[:bestQ], slots[bestQ+1:]...)
	}
	return t
}

// PreOrder returns node ids in pre-order, left subtree before right.
func (t *Tree) PreOrder() []int {
	if t == nil || len(t.Nodes) == 0 {
		return nil
	}
	var res []int
	todo := []int{t.Root()}
	for len(todo) > 0 {
		id := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		res = append(res, id)
		if node := t.Nodes[id]; !node.IsLeaf() {
			// left is popped first
			todo = append(todo, node.Right, node.Left)
		}
	}
	return res
}

// Leaves returns the item indices below node id, left to right.
func (t *Tree) Leaves(id int) []int {
	var res []int
	todo := []int{id}
	for len(todo) > 0 {
		cur := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		node := t.Nodes[cur]
		if node.IsLeaf() {
			res = append(res, node.Index)
			continue
		}
		todo = append(todo, node.Right, node.Left)
	}
	return res
}

// Positions returns an x position per node id: leaves are numbered in
// visit order, inner nodes sit at the size weighted mean of their children.
func (t *Tree) Positions() []float64 {
	if t == nil {
		return nil
	}
	x := make([]float64, len(t.Nodes))
	var inner []int
	leaf := 0
	for _, id := range t.PreOrder() {
		if t.Nodes[id].IsLeaf() {
			x[id] = float64(leaf)
			leaf++
		} else {
			inner = append(inner, id)
		}
	}
	sort.SliceStable(inner, func(i, j int) bool {
		return t.Nodes[inner[i]].Depth < t.Nodes[inner[j]].Depth
	})
	for _, id := range inner {
		node := t.Nodes[id]
		l, r := t.Nodes[node.Left], t.Nodes[node.Right]
		x[id] = (x[node.Left]*float64(l.Size) + x[node.Right]*float64(r.Size)) / float64(l.Size+r.Size)
	}
	return x
}

// Cut splits the tree into clusters whose merge height is at most
// threshold times the root height. Clusters come in left to right order.
func (t *Tree) Cut(threshold float64) [][]int {
	if t == nil || len(t.Nodes) == 0 {
		return nil
	}
	limit := threshold * t.Nodes[t.Root()].Height

	var clusters [][]int
	todo := []int{t.Root()}
	for len(todo) > 0 {
		id := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		node := t.Nodes[id]
		if node.IsLeaf() || node.Height <= limit {
			clusters = append(clusters, t.Leaves(id))
			continue
		}
		todo = append(todo, node.Right, node.Left)
	}
	return clusters
}

// ClusterResult assigns each item to a cluster.
type ClusterResult struct {
	// cluster id per item, in item order
	Assignments []int
	NumClusters int
	// x position per item
	Positions []float64
}

// Clustering clusters the items of m and cuts the tree at threshold. It
// returns nil for fewer than two items, where clustering means nothing.
func Clustering(m distance.Matrix, threshold float64) *ClusterResult {
	if len(m) <= 1 {
		return nil
	}
	tree := Cluster(m)
	if tree == nil {
		return nil
	}

	clusters := tree.Cut(threshold)
	res := &ClusterResult{
		Assignments: make([]int, len(m)),
		NumClusters: len(clusters),
		Positions:   make([]float64, len(m)),
	}
	for c, items := range clusters {
		for _, item := range items {
			res.Assignments[item] = c
		}
	}
	x := tree.Positions()
	for id, node := range tree.Nodes {
		if node.IsLeaf() {
			res.Positions[node.Index] = x[id]
		}
	}
	return res
}
