package service

import (
	"fmt"
	"math"
)

// AverageRating is the arithmetic mean of the ratings, 0 for an empty set.
// No rounding happens here; callers round only for display.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// Stars rounds an average to the nearest whole star, half up, clamped to [0,5].
func Stars(avg float64) int {
	stars := int(math.Floor(avg + 0.5))
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}

// FormatAvg renders an average with one decimal for display.
func FormatAvg(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

// TotalPages is ceil(total/size).
func TotalPages(total, size int) int {
	if size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
