package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPearson(t *testing.T) {
	tests := []struct {
		name   string
		x, y   []float64
		want   float64
		wantOK bool
	}{
		{
			name:   "perfectly increasing",
			x:      []float64{1, 2, 3, 4, 5},
			y:      []float64{3, 5, 7, 9, 11},
			want:   1,
			wantOK: true,
		},
		{
			name:   "perfectly decreasing",
			x:      []float64{1.5, 2.5, 3.5},
			y:      []float64{30, 20, 10},
			want:   -1,
			wantOK: true,
		},
		{
			name:   "uncorrelated",
			x:      []float64{1, 2, 3, 4},
			y:      []float64{1, -1, -1, 1},
			want:   0,
			wantOK: true,
		},
		{
			name:   "partial correlation",
			x:      []float64{1, 2, 3},
			y:      []float64{1, 3, 2},
			want:   0.5,
			wantOK: true,
		},
		{
			name: "constant second series",
			x:    []float64{1, 2, 3},
			y:    []float64{4, 4, 4},
		},
		{
			name: "length mismatch",
			x:    []float64{1, 2},
			y:    []float64{1},
		},
		{
			name: "single point",
			x:    []float64{1},
			y:    []float64{1},
		},
		{
			name: "constant series",
			x:    []float64{2, 2, 2},
			y:    []float64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pearson(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}

func TestRolling(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90}

	got := Rolling(values, 7)

	require.Len(t, got, len(values))
	for i := 0; i < 6; i++ {
		assert.Nil(t, got[i], "index %d", i)
	}
	for i := 6; i < len(values); i++ {
		require.NotNil(t, got[i])
		want := 0.0
		for _, v := range values[i-6 : i+1] {
			want += v
		}
		assert.InDelta(t, want/7, *got[i], 1e-9, "index %d", i)
	}

	assert.Len(t, Rolling(values[:3], 7), 3)
	for _, v := range Rolling(values, 0) {
		assert.Nil(t, v)
	}
}

func TestMeanAndStdDev(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)

	assert.Equal(t, 0.0, StdDev([]float64{42}))
	assert.InDelta(t, math.Sqrt(5.0/3.0), StdDev([]float64{1, 2, 3, 4}), 1e-12)
}

func TestQuantile(t *testing.T) {
	values := []float64{4, 1, 3, 2}

	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 4.0, Quantile(values, 1))
	assert.InDelta(t, 1.75, Quantile(values, 0.25), 1e-12)
	assert.InDelta(t, 2.5, Quantile(values, 0.5), 1e-12)
	assert.Equal(t, 0.0, Quantile(nil, 0.5))
	assert.Equal(t, []float64{4, 1, 3, 2}, values, "input must not be reordered")
}
