package util

import (
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func IsMidiPath(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherAllMidiPaths walks path and returns every midi file below it, or
// path itself when it is a file. maxNum of 0 means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsMidiPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

// Extent returns the smallest and largest value. ok is false for no values.
func Extent[A Number](nums []A) (lo A, hi A, ok bool) {
	if len(nums) == 0 {
		return lo, hi, false
	}
	lo, hi = nums[0], nums[0]
	for _, v := range nums[1:] {
		lo = Min(lo, v)
		hi = Max(hi, v)
	}
	return lo, hi, true
}

func Sum[A Number](nums []A) float64 {
	var total float64
	for _, v := range nums {
		total += float64(v)
	}
	return total
}

func Mean[A Number](nums []A) float64 {
	if len(nums) == 0 {
		return 0
	}
	return Sum(nums) / float64(len(nums))
}

// Variance is the sample variance, 0 for fewer than two values.
func Variance[A Number](nums []A) float64 {
	if len(nums) < 2 {
		return 0
	}
	mean := Mean(nums)
	var total float64
	for _, v := range nums {
		d := float64(v) - mean
		total += d * d
	}
	return total / float64(len(nums)-1)
}

// Count returns how often value appears in nums.
func Count[A comparable](nums []A, value A) int {
	var res int
	for _, v := range nums {
		if v == value {
			res++
		}
	}
	return res
}
