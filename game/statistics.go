package game

import (
	"math"
	"slices"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Median returns the median of data without reordering it.
func Median(data []float64) float64 {
	count := len(data)
	if count == 0 {
		return 0
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	if count%2 != 0 {
		return sorted[count/2]
	}
	return (sorted[count/2-1] + sorted[count/2]) * 0.5
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	mean := Mean(data)

	var variance float64
	for _, number := range data {
		variance += (number - mean) * (number - mean)
	}
	return math.Sqrt(variance / count)
}

// Percentile returns the p-th percentile (0-100) of data using nearest-rank.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	rank := int(math.Ceil(p/100*float64(len(sorted)))) - 1
	rank = max(0, min(rank, len(sorted)-1))
	return sorted[rank]
}
