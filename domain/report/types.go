// Package report holds the aggregate statistics consumed by the narrative
// generator: category partitions, per-subject grade statistics and two-term
// comparison entries.
package report

// Remark is the short classification attached to a comparison entry,
// driving styling and narrative tone.
type Remark string

const (
	RemarkSuccess   Remark = "success"
	RemarkDanger    Remark = "danger"
	RemarkInfo      Remark = "info"
	RemarkSecondary Remark = "secondary"
)

// CategoryEntry is one bucket of a partition. Invariant: the counts of all
// entries of a partition sum to Total, and Percentage == 100*Count/Total
// (0 when Total is 0). Displayed percentages are rounded to 2 decimals with
// no largest-remainder correction, so they need not sum to exactly 100.
type CategoryEntry struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Total      int     `json:"total"`
}

// Partition is a full category breakdown for one field
type Partition struct {
	Field   string                   `json:"field"`
	Total   int                      `json:"total"`
	Order   []string                 `json:"order"` // category labels in display order
	Entries map[string]CategoryEntry `json:"entries"`
}

// Entry returns the bucket for a label, zero-valued when absent
func (p Partition) Entry(label string) CategoryEntry {
	return p.Entries[label]
}

// GradeBand buckets a 0-20 grade for distribution diagnosis
type GradeBand string

const (
	BandExcellent   GradeBand = "ممتاز"
	BandGood        GradeBand = "جيد"
	BandAverage     GradeBand = "متوسط"
	BandNearAverage GradeBand = "قريب من المتوسط"
	BandWeak        GradeBand = "ضعيف"
)

// GradeBands lists the bands in descending order of merit
var GradeBands = []GradeBand{BandExcellent, BandGood, BandAverage, BandNearAverage, BandWeak}

// ClassifyGrade maps a 0-20 grade into its band. Lower bounds are inclusive.
func ClassifyGrade(grade float64) GradeBand {
	switch {
	case grade >= 16:
		return BandExcellent
	case grade >= 14:
		return BandGood
	case grade >= 10:
		return BandAverage
	case grade >= 8:
		return BandNearAverage
	default:
		return BandWeak
	}
}

// SubjectStats are the raw statistics of one subject for one term
type SubjectStats struct {
	Subject  string                `json:"subject"`
	Count    int                   `json:"count"`
	Mean     float64               `json:"mean"`
	StdDev   float64               `json:"std_dev"` // population standard deviation
	Median   float64               `json:"median"`
	Q1       float64               `json:"q1"`
	Q3       float64               `json:"q3"`
	PassRate float64               `json:"pass_rate"` // percentage of grades >= 10
	Bands    map[GradeBand]CategoryEntry `json:"bands"`
}

// TermComparison pairs per-term snapshots of one subject with the signed
// difference of the compared measure and its classified remark.
type TermComparison struct {
	Subject    string       `json:"subject"`
	TermA      SubjectStats `json:"term_a"`
	TermB      SubjectStats `json:"term_b"`
	Measure    string       `json:"measure"`    // "pass_rate" or "mean"
	ValueA     float64      `json:"value_a"`    // compared measure, term A
	ValueB     float64      `json:"value_b"`    // compared measure, term B
	Difference float64      `json:"difference"` // ValueB - ValueA
	Remark     Remark       `json:"remark"`
}
