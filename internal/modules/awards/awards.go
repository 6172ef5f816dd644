// Package awards computes winning-rate statistics over historical award
// results so bidders can see where actual winning bids land relative to
// estimated prices.
package awards

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Report summarizes winning rates (winning bid / estimated price, in
// percent) over a set of award results.
type Report struct {
	Count  int     `json:"분석건수"`
	Mean   float64 `json:"평균낙찰률"`
	StdDev float64 `json:"표준편차"`
	Min    float64 `json:"최저낙찰률"`
	Max    float64 `json:"최고낙찰률"`
}

// Analyze computes the winning-rate report from raw rates in percent.
// An empty input yields a zero-valued report.
func Analyze(rates []float64) Report {
	if len(rates) == 0 {
		return Report{}
	}

	mean, std := stat.MeanStdDev(rates, nil)
	// MeanStdDev returns NaN for a single sample; a lone data point has
	// no spread.
	if math.IsNaN(std) {
		std = 0
	}

	min, max := rates[0], rates[0]
	for _, r := range rates[1:] {
		if r < min {
			min = r
		}
		if r > max {
			max = r
		}
	}

	return Report{
		Count:  len(rates),
		Mean:   round1(mean),
		StdDev: round1(std),
		Min:    round1(min),
		Max:    round1(max),
	}
}

// WinningRate converts one award record to a rate in percent. Records
// without an estimated price carry no rate information.
func WinningRate(winningBid, estimatedPrice int64) (float64, bool) {
	if estimatedPrice <= 0 || winningBid <= 0 {
		return 0, false
	}
	return float64(winningBid) / float64(estimatedPrice) * 100, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
