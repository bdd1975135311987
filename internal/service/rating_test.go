package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookhive/bookreview-service/internal/service"
)

func TestAverageRating(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "empty set is 0, not NaN", ratings: nil, want: 0},
		{name: "single", ratings: []int{3}, want: 3},
		{name: "4 5 3", ratings: []int{4, 5, 3}, want: 4.0},
		{name: "non integer mean", ratings: []int{4, 5}, want: 4.5},
		{name: "mean keeps full precision", ratings: []int{1, 1, 2}, want: 4.0 / 3.0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tt.want, service.AverageRating(tt.ratings), 1e-9)
		})
	}
}

func TestStars(t *testing.T) {
	t.Parallel()
	tests := []struct {
		avg  float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{2.49, 2},
		{2.5, 3},
		{4.0, 4},
		{4.5, 5},
		{5, 5},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, service.Stars(tt.avg), "avg=%v", tt.avg)
	}
}

func TestFormatAvg(t *testing.T) {
	t.Parallel()
	require.Equal(t, "0.0", service.FormatAvg(0))
	require.Equal(t, "4.0", service.FormatAvg(4))
	require.Equal(t, "4.3", service.FormatAvg(13.0/3.0))
}

func TestTotalPages(t *testing.T) {
	t.Parallel()
	tests := []struct {
		total, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
		{10, 0, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, service.TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}
