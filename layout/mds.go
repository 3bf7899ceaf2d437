// Package layout reduces a distance matrix to one coordinate or cluster id
// per item.
package layout

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"

	"github.com/jsphweid/barsim/distance"
)

// MDS1D projects the items of m onto one dimension with classical
// (Torgerson) scaling. Similar items end up with close coordinates; the
// sign of the axis is arbitrary.
func MDS1D(m distance.Matrix) []float64 {
	n := len(m)
	if n == 0 {
		return []float64{}
	}

	data := make([]float64, 0, n*n)
	for _, row := range m {
		data = append(data, row...)
	}
	dis := mat.NewSymDense(n, data)

	var dst mat.Dense
	// dst is n x k, k being the number of positive eigenvalues
	k, _ := mds.TorgersonScaling(&dst, nil, dis)
	res := make([]float64, n)
	if k == 0 {
		return res
	}
	for i := range res {
		res[i] = dst.At(i, 0)
	}
	return res
}
