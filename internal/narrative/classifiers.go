// Package narrative turns aggregate statistics and individual records into
// templated Arabic prose through deterministic, ordered rule tables, and
// assembles the printable report documents.
//
// Every classifier below is an ordered table evaluated top to bottom with
// first match winning. The order of checks is part of the contract: the
// conditions are not mutually exclusive by construction.
package narrative

import (
	"math"

	"murshid/domain/report"
)

// Magnitude labels the size of an improvement or decline delta
type Magnitude string

const (
	MagnitudeVeryLarge  Magnitude = "كبير جدًا"
	MagnitudeLarge      Magnitude = "كبير"
	MagnitudeNoticeable Magnitude = "ملحوظ"
	MagnitudeSlight     Magnitude = "طفيف"
)

// ClassifyMagnitude bands the absolute difference. Each lower bound is
// inclusive: a delta of exactly 15 is very large, exactly 5 is noticeable.
func ClassifyMagnitude(delta float64) Magnitude {
	abs := math.Abs(delta)
	switch {
	case abs >= 15:
		return MagnitudeVeryLarge
	case abs >= 10:
		return MagnitudeLarge
	case abs >= 5:
		return MagnitudeNoticeable
	default:
		return MagnitudeSlight
	}
}

// Level labels a mean score on the 0-20 scale
type Level string

const (
	LevelHigh   Level = "مرتفع"
	LevelMedium Level = "متوسط"
	LevelLow    Level = "ضعيف"
)

// ClassifyMeanLevel bands a subject mean: >=14 high, >=10 medium, else low
func ClassifyMeanLevel(mean float64) Level {
	switch {
	case mean >= 14:
		return LevelHigh
	case mean >= 10:
		return LevelMedium
	default:
		return LevelLow
	}
}

// RateBand labels a pass-rate percentage
type RateBand string

const (
	RateVeryHigh RateBand = "مرتفعة جدًا"
	RateGood     RateBand = "جيدة"
	RateMedium   RateBand = "متوسطة"
	RateLow      RateBand = "ضعيفة"
)

// ClassifyPassRate bands a pass-rate percentage into four bands with
// inclusive lower bounds: exactly 80 lands in the top band.
func ClassifyPassRate(rate float64) RateBand {
	switch {
	case rate >= 80:
		return RateVeryHigh
	case rate >= 60:
		return RateGood
	case rate >= 40:
		return RateMedium
	default:
		return RateLow
	}
}

// Spread labels the dispersion of grades around the mean
type Spread string

const (
	SpreadHigh   Spread = "تشتت كبير في النتائج"
	SpreadMedium Spread = "تشتت متوسط في النتائج"
	SpreadLow    Spread = "تجانس كبير في النتائج"
)

// ClassifySpread bands a population standard deviation
func ClassifySpread(stdDev float64) Spread {
	switch {
	case stdDev >= 3.5:
		return SpreadHigh
	case stdDev >= 2:
		return SpreadMedium
	default:
		return SpreadLow
	}
}

// NoDataNotice is the explicit notice rendered instead of an empty or broken
// prose block when an aggregate has no data behind it.
const NoDataNotice = "لا توجد بيانات كافية لإجراء التحليل"

// bandShares carries the percentage of each merit band for the diagnosis table
type bandShares struct {
	excellent   float64
	good        float64
	average     float64
	nearAverage float64
	weak        float64
}

// diagnosisRule is one row of the dominance table: a predicate and the prose
// it produces when it is the first to match.
type diagnosisRule struct {
	when func(bandShares) bool
	text string
}

// dominanceTable is evaluated top to bottom; the row order is the contract.
var dominanceTable = []diagnosisRule{
	{
		when: func(d bandShares) bool { return d.excellent+d.good >= 50 },
		text: "أغلب التلاميذ يتمتعون بمستوى جيد أو ممتاز في هذه المادة، مما يدل على تحكم واضح في كفاءاتها",
	},
	{
		when: func(d bandShares) bool { return d.average >= 40 },
		text: "تتمركز نتائج أغلب التلاميذ في المستوى المتوسط، ويمكن تحسينها بمجهود إضافي ومتابعة منتظمة",
	},
	{
		when: func(d bandShares) bool { return d.weak+d.nearAverage >= 60 },
		text: "تعاني نسبة كبيرة من التلاميذ من ضعف في هذه المادة، مما يستدعي خطة معالجة بيداغوجية عاجلة",
	},
	{
		when: func(bandShares) bool { return true },
		text: "تتوزع نتائج التلاميذ على مختلف المستويات دون هيمنة فئة معينة",
	},
}

// DiagnoseDistribution applies the dominance table to a band partition.
// A zero-total partition short-circuits to the no-data notice before any
// rule is consulted.
func DiagnoseDistribution(bands map[report.GradeBand]report.CategoryEntry) string {
	total := 0
	for _, entry := range bands {
		total += entry.Count
	}
	if total == 0 {
		return NoDataNotice
	}

	shares := bandShares{
		excellent:   bands[report.BandExcellent].Percentage,
		good:        bands[report.BandGood].Percentage,
		average:     bands[report.BandAverage].Percentage,
		nearAverage: bands[report.BandNearAverage].Percentage,
		weak:        bands[report.BandWeak].Percentage,
	}
	for _, rule := range dominanceTable {
		if rule.when(shares) {
			return rule.text
		}
	}
	// The table ends with a catch-all
	return NoDataNotice
}
