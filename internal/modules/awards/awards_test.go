package awards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Empty(t *testing.T) {
	report := Analyze(nil)

	assert.Equal(t, Report{}, report)
}

func TestAnalyze_Statistics(t *testing.T) {
	report := Analyze([]float64{80, 90, 100})

	assert.Equal(t, 3, report.Count)
	assert.Equal(t, 90.0, report.Mean)
	// Sample standard deviation: sqrt((100+0+100)/2) = 10.
	assert.Equal(t, 10.0, report.StdDev)
	assert.Equal(t, 80.0, report.Min)
	assert.Equal(t, 100.0, report.Max)
}

func TestAnalyze_SingleSampleHasNoSpread(t *testing.T) {
	report := Analyze([]float64{87.5})

	assert.Equal(t, 1, report.Count)
	assert.Equal(t, 87.5, report.Mean)
	assert.Equal(t, 0.0, report.StdDev)
	assert.Equal(t, 87.5, report.Min)
	assert.Equal(t, 87.5, report.Max)
}

func TestWinningRate(t *testing.T) {
	rate, ok := WinningRate(875_000_000, 1_000_000_000)
	assert.True(t, ok)
	assert.Equal(t, 87.5, rate)

	// Records without price information carry no rate.
	_, ok = WinningRate(875_000_000, 0)
	assert.False(t, ok)

	_, ok = WinningRate(0, 1_000_000_000)
	assert.False(t, ok)
}
