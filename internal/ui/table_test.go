package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "PID", Width: 7},
		{Title: "NAME", Width: 16},
	}

	t.Run("empty rows", func(t *testing.T) {
		assert.Empty(t, RenderSimpleTable(columns, nil))
	})

	t.Run("renders header and rows", func(t *testing.T) {
		out := RenderSimpleTable(columns, [][]string{
			{"100", "nginx"},
			{"200", "postgres"},
		})
		assert.Contains(t, out, "PID")
		assert.Contains(t, out, "nginx")
		assert.Contains(t, out, "postgres")
	})
}

func TestPercentText(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
	}{
		{"healthy", 10},
		{"warning", 75},
		{"critical", 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := PercentText(tt.percent, 70, 90)
			assert.Contains(t, out, "%")
		})
	}
}

func TestUsageBar(t *testing.T) {
	bar := UsageBar(12, 50)
	assert.True(t, strings.HasPrefix(bar, "["))
	assert.True(t, strings.HasSuffix(bar, "]"))
	assert.Equal(t, 5, strings.Count(bar, "="))

	assert.Equal(t, 0, strings.Count(UsageBar(12, 0), "="))
	assert.Equal(t, 10, strings.Count(UsageBar(12, 150), "="))
}

func TestKeyValue(t *testing.T) {
	line := KeyValue("Total", "16 GiB", 10)
	assert.Contains(t, line, "Total")
	assert.Contains(t, line, "16 GiB")
	assert.GreaterOrEqual(t, lipgloss.Width(line), 11)
}
