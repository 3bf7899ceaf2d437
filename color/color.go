package color

import (
	"image/color"

	"github.com/jsphweid/barsim/distance"
	"github.com/jsphweid/barsim/layout"
	"github.com/jsphweid/barsim/util"
)

// MapToColors rescales values so their minimum maps to 0 and maximum to 1
// and applies cmap. All equal values map to 0.5.
func MapToColors(values []float64, cmap Colormap) []color.Color {
	res := []color.Color{}
	if len(values) == 0 || cmap == nil {
		return res
	}
	lo, hi, _ := util.Extent(values)
	for _, v := range values {
		scaled := 0.5
		if hi > lo {
			scaled = (v - lo) / (hi - lo)
		}
		res = append(res, cmap(scaled))
	}
	return res
}

// centered places every id in the middle of its own band within [lo, hi],
// so no id lands on either end of the colormap.
func centered(ids []int, lo, hi int) []float64 {
	res := make([]float64, len(ids))
	width := float64(hi - lo + 1)
	for i, id := range ids {
		res[i] = (float64(id-lo) + 0.5) / width
	}
	return res
}

func applyAll(values []float64, cmap Colormap) []color.Color {
	res := make([]color.Color, len(values))
	for i, v := range values {
		res[i] = cmap(v)
	}
	return res
}

// ViaMDS colors items by their one dimensional MDS coordinate.
func ViaMDS(m distance.Matrix, cmap Colormap) []color.Color {
	if len(m) == 0 || cmap == nil {
		return []color.Color{}
	}
	return MapToColors(layout.MDS1D(m), cmap)
}

// ViaClustering colors items by their hierarchical cluster, cut at
// threshold (a fraction of the largest merge distance).
func ViaClustering(m distance.Matrix, cmap Colormap, threshold float64) []color.Color {
	if cmap == nil {
		return []color.Color{}
	}
	res := layout.Clustering(m, threshold)
	if res == nil {
		return []color.Color{}
	}
	// the domain covers every cluster even if some id went unused
	values := centered(res.Assignments, 0, res.NumClusters-1)
	return applyAll(values, cmap)
}

// ViaCompression colors items by the repetition hierarchy of m.
func ViaCompression(m distance.Matrix, cmap Colormap, depth int) []color.Color {
	if len(m) == 0 || cmap == nil {
		return []color.Color{}
	}
	ids := layout.CompressionClusters(m, depth)
	lo, hi, _ := util.Extent(ids)
	return applyAll(centered(ids, lo, hi), cmap)
}

// ViaOccurrence colors items by how often they occur: rare items get the
// low end of the colormap, common ones the high end.
func ViaOccurrence(m distance.Matrix, cmap Colormap) []color.Color {
	if len(m) == 0 || cmap == nil {
		return []color.Color{}
	}
	res := make([]color.Color, len(m))
	for rank, item := range layout.OccurrenceOrder(m) {
		res[item] = cmap(float64(rank) / float64(len(m)))
	}
	return res
}
