package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"murshid/domain/report"
)

// Boundary deltas land in the higher band: lower bounds are inclusive.
func TestClassifyMagnitude(t *testing.T) {
	tests := []struct {
		delta float64
		want  Magnitude
	}{
		{15.0, MagnitudeVeryLarge},
		{22, MagnitudeVeryLarge},
		{14.99, MagnitudeLarge},
		{10.0, MagnitudeLarge},
		{9.99, MagnitudeNoticeable},
		{5.0, MagnitudeNoticeable},
		{4.99, MagnitudeSlight},
		{0, MagnitudeSlight},
		// classification works on the absolute value
		{-15.0, MagnitudeVeryLarge},
		{-5.0, MagnitudeNoticeable},
		{-3, MagnitudeSlight},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyMagnitude(tc.delta), "delta %v", tc.delta)
	}
}

func TestClassifyMeanLevel(t *testing.T) {
	tests := []struct {
		mean float64
		want Level
	}{
		{14.0, LevelHigh},
		{18, LevelHigh},
		{13.99, LevelMedium},
		{10.0, LevelMedium},
		{9.99, LevelLow},
		{0, LevelLow},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyMeanLevel(tc.mean), "mean %v", tc.mean)
	}
}

func TestClassifyPassRate(t *testing.T) {
	tests := []struct {
		rate float64
		want RateBand
	}{
		{80.0, RateVeryHigh},
		{100, RateVeryHigh},
		{79.99, RateGood},
		{60.0, RateGood},
		{59.99, RateMedium},
		{40.0, RateMedium},
		{39.99, RateLow},
		{0, RateLow},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyPassRate(tc.rate), "rate %v", tc.rate)
	}
}

func TestClassifySpread(t *testing.T) {
	tests := []struct {
		stdDev float64
		want   Spread
	}{
		{3.5, SpreadHigh},
		{5, SpreadHigh},
		{3.49, SpreadMedium},
		{2.0, SpreadMedium},
		{1.99, SpreadLow},
		{0, SpreadLow},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifySpread(tc.stdDev), "stdDev %v", tc.stdDev)
	}
}

func bands(excellent, good, average, near, weak int) map[report.GradeBand]report.CategoryEntry {
	counts := map[report.GradeBand]int{
		report.BandExcellent:   excellent,
		report.BandGood:        good,
		report.BandAverage:     average,
		report.BandNearAverage: near,
		report.BandWeak:        weak,
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	out := make(map[report.GradeBand]report.CategoryEntry, len(counts))
	for band, c := range counts {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(c) / float64(total)
		}
		out[band] = report.CategoryEntry{Count: c, Percentage: pct, Total: total}
	}
	return out
}

func TestDiagnoseDistribution(t *testing.T) {
	tests := []struct {
		name string
		in   map[report.GradeBand]report.CategoryEntry
		want string
	}{
		{
			"excellent and good dominate",
			bands(3, 2, 1, 2, 2),
			dominanceTable[0].text,
		},
		{
			"average block",
			bands(1, 0, 4, 2, 3),
			dominanceTable[1].text,
		},
		{
			"weak majority",
			bands(0, 1, 1, 3, 5),
			dominanceTable[2].text,
		},
		{
			"no dominant band",
			bands(1, 1, 1, 1, 1),
			dominanceTable[3].text,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DiagnoseDistribution(tc.in))
		})
	}
}

// The table order is part of the contract: when the first rule matches, the
// later ones are never consulted even if they would also match.
func TestDiagnoseDistributionRuleOrder(t *testing.T) {
	// excellent+good = 50 and average = 40 both hold; the first row wins
	in := bands(3, 2, 4, 0, 1)
	assert.Equal(t, dominanceTable[0].text, DiagnoseDistribution(in))
}

func TestDiagnoseDistributionZeroTotal(t *testing.T) {
	assert.Equal(t, NoDataNotice, DiagnoseDistribution(bands(0, 0, 0, 0, 0)))
	assert.Equal(t, NoDataNotice, DiagnoseDistribution(nil))
}
