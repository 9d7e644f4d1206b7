package dashboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force TrueColor output in tests so we can verify ANSI color codes
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestFindMinMax(t *testing.T) {
	tests := []struct {
		name          string
		data          []float64
		wantMin       float64
		wantMax       float64
		wantIsPercent bool
	}{
		{
			name:          "empty data returns percentage defaults",
			data:          []float64{},
			wantMin:       0,
			wantMax:       100,
			wantIsPercent: true,
		},
		{
			name:          "percentage data uses fixed range",
			data:          []float64{10, 50, 90},
			wantMin:       0,
			wantMax:       100,
			wantIsPercent: true,
		},
		{
			name:          "non-percentage data uses actual range",
			data:          []float64{-50, 200, 500},
			wantMin:       -50,
			wantMax:       500,
			wantIsPercent: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minVal, maxVal, isPercent := findMinMax(tt.data)
			assert.Equal(t, tt.wantMin, minVal)
			assert.Equal(t, tt.wantMax, maxVal)
			assert.Equal(t, tt.wantIsPercent, isPercent)
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name   string
		val    float64
		minVal float64
		maxVal float64
		want   float64
	}{
		{"middle value", 50, 0, 100, 0.5},
		{"min value", 0, 0, 100, 0},
		{"max value", 100, 0, 100, 1},
		{"degenerate range", 5, 5, 5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, normalizeValue(tt.val, tt.minVal, tt.maxVal), 0.0001)
		})
	}
}

func TestRenderBrailleSparkline(t *testing.T) {
	t.Run("empty data returns empty string", func(t *testing.T) {
		assert.Empty(t, RenderBrailleSparkline(nil, 10, 2, ColorGraph))
	})

	t.Run("zero dimensions return empty string", func(t *testing.T) {
		assert.Empty(t, RenderBrailleSparkline([]float64{1, 2}, 0, 2, ColorGraph))
		assert.Empty(t, RenderBrailleSparkline([]float64{1, 2}, 10, 0, ColorGraph))
	})

	t.Run("renders requested number of rows", func(t *testing.T) {
		graph := RenderBrailleSparkline([]float64{10, 50, 90, 30}, 10, 2, ColorGraph)
		require.NotEmpty(t, graph)
		assert.Len(t, strings.Split(graph, "\n"), 2)
	})

	t.Run("high values produce dots in top row", func(t *testing.T) {
		graph := RenderBrailleSparkline([]float64{100, 100, 100, 100}, 2, 2, ColorGraph)
		rows := strings.Split(graph, "\n")
		require.Len(t, rows, 2)
		// Top row must contain a non-empty braille pattern
		assert.NotContains(t, rows[0], string(brailleBase))
	})

	t.Run("percentage data is threshold colored", func(t *testing.T) {
		graph := RenderBrailleSparkline([]float64{95, 95}, 1, 1, ColorGraph)
		// Critical values render in the critical color, not the base color
		assert.Contains(t, graph, "255;0;85")
		assert.NotContains(t, graph, "0;255;255")
	})
}

func TestRenderMiniSparkline(t *testing.T) {
	assert.Empty(t, RenderMiniSparkline(nil, 10))
	assert.Empty(t, RenderMiniSparkline([]float64{1}, 0))

	spark := RenderMiniSparkline([]float64{0, 50, 100}, 3)
	require.NotEmpty(t, spark)
	runes := []rune(spark)
	assert.Len(t, runes, 3)
	assert.Equal(t, '▁', runes[0])
	assert.Equal(t, '█', runes[2])
}

func TestRenderColoredMiniSparkline(t *testing.T) {
	assert.Empty(t, RenderColoredMiniSparkline(nil, 10, ColorGraph))

	spark := RenderColoredMiniSparkline([]float64{10, 20}, 2, ColorGraph)
	assert.Contains(t, spark, "0;255;255")
}

func TestRenderGradientBar(t *testing.T) {
	t.Run("full bar contains only filled blocks", func(t *testing.T) {
		bar := RenderGradientBar(10, 100)
		assert.Contains(t, bar, "█")
		assert.NotContains(t, bar, "░")
	})

	t.Run("empty bar contains only empty blocks", func(t *testing.T) {
		bar := RenderGradientBar(10, 0)
		assert.NotContains(t, bar, "█")
		assert.Contains(t, bar, "░")
	})

	t.Run("clamps out of range percentages", func(t *testing.T) {
		assert.NotEmpty(t, RenderGradientBar(10, -5))
		assert.NotEmpty(t, RenderGradientBar(10, 150))
	})

	t.Run("minimum width is one", func(t *testing.T) {
		assert.NotEmpty(t, RenderGradientBar(0, 50))
	})
}

func TestResampleData(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, resampleData(nil, 5))
		assert.Nil(t, resampleData([]float64{1}, 0))
	})

	t.Run("same size returns input", func(t *testing.T) {
		data := []float64{1, 2, 3}
		assert.Equal(t, data, resampleData(data, 3))
	})

	t.Run("single value fills target", func(t *testing.T) {
		assert.Equal(t, []float64{7, 7, 7}, resampleData([]float64{7}, 3))
	})

	t.Run("downsampling preserves peaks", func(t *testing.T) {
		data := []float64{0, 0, 90, 0, 0, 0, 80, 0}
		result := resampleData(data, 4)
		require.Len(t, result, 4)
		assert.Contains(t, result, 90.0)
		assert.Contains(t, result, 80.0)
	})

	t.Run("upsampling interpolates", func(t *testing.T) {
		result := resampleData([]float64{0, 100}, 5)
		require.Len(t, result, 5)
		assert.Equal(t, 0.0, result[0])
		assert.InDelta(t, 50.0, result[2], 0.0001)
		assert.Equal(t, 100.0, result[4])
	})
}
