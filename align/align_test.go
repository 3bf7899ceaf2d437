package align

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"classic", "kitten", "sitting", 3},
		{"equal", "abc", "abc", 0},
		{"first empty", "", "abc", 3},
		{"second empty", "ab", "", 2},
		{"both empty", "", "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Levenshtein([]rune(c.a), []rune(c.b)))
		})
	}
}

func TestLevenshteinFloats(t *testing.T) {
	assert.Equal(t, 1, Levenshtein([]float64{0, 0.5, 1}, []float64{0, 0.75, 1}))
}

func TestGotoh(t *testing.T) {
	sim := MatchMismatch[int]
	cases := []struct {
		name string
		a, b []int
		want float64
	}{
		{"identical", []int{60, 62, 64}, []int{60, 62, 64}, 3},
		{"single gap", []int{1, 2, 3}, []int{1, 3}, 1},
		{"extended gap", []int{1, 2, 3, 4}, []int{1, 4}, 0.5},
		{"mismatch", []int{1}, []int{2}, -1},
		{"one empty", []int{}, []int{1, 2}, -1.5},
		{"both empty", []int{}, []int{}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Gotoh(c.a, c.b, sim, 1, 0.5))
		})
	}
}

func TestGotohDistance(t *testing.T) {
	sim := MatchMismatch[int]
	assert.Equal(t, 0.0, GotohDistance([]int{1, 2, 3}, []int{1, 2, 3}, sim, 1, 0.5))
	assert.Equal(t, 1.5, GotohDistance([]int{1, 2, 3}, []int{1, 3}, sim, 1, 0.5))

	close := GotohDistance([]int{60, 62, 64, 65}, []int{60, 62, 64, 67}, sim, 1, 0.5)
	far := GotohDistance([]int{60, 62, 64, 65}, []int{71, 69, 40, 41}, sim, 1, 0.5)
	assert.Less(t, close, far)
}

func TestJaccardIndex(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0.5, JaccardIndex([]int{0, 4, 7}, []int{0, 4, 9}))
	assert.Equal(1.0, JaccardIndex([]int{0, 0, 4}, []int{4, 0}))
	assert.Equal(1.0, JaccardIndex([]int{}, []int{}))
	assert.Equal(0.0, JaccardIndex([]int{}, []int{1}))
}

func TestAlignProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	seq := gen.SliceOf(gen.IntRange(0, 4))

	properties.Property("levenshtein is symmetric and zero only for equal input", prop.ForAll(
		func(a, b []int) bool {
			d := Levenshtein(a, b)
			if d != Levenshtein(b, a) {
				return false
			}
			return (d == 0) == reflect.DeepEqual(append([]int{}, a...), append([]int{}, b...))
		},
		seq, seq,
	))

	properties.Property("gotoh distance is non-negative and zero only for equal input", prop.ForAll(
		func(a, b []int) bool {
			d := GotohDistance(a, b, MatchMismatch[int], 1, 0.5)
			if d < 0 {
				return false
			}
			return (d == 0) == reflect.DeepEqual(append([]int{}, a...), append([]int{}, b...))
		},
		seq, seq,
	))

	properties.Property("jaccard index stays in [0, 1]", prop.ForAll(
		func(a, b []int) bool {
			j := JaccardIndex(a, b)
			return j >= 0 && j <= 1
		},
		seq, seq,
	))

	properties.TestingRun(t)
}
