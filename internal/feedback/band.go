package feedback

import "resume-feedback/internal/analysis"

// Band is the visual category of a score.
type Band string

const (
	// BandNone marks an absent score; no band class is applied.
	BandNone Band = ""
	BandLow  Band = "low"
	BandMid  Band = "mid"
	BandHigh Band = "high"
)

type thresholds struct {
	high float64
	mid  float64
}

var (
	// scoreBands applies to section and industry sub-report scores.
	scoreBands = thresholds{high: 90, mid: 40}
	// headlineBands applies to the overall and industry overall scores.
	headlineBands = thresholds{high: 70, mid: 50}
)

func (t thresholds) band(score analysis.Number) Band {
	switch {
	case !score.Present:
		return BandNone
	case score.Value >= t.high:
		return BandHigh
	case score.Value >= t.mid:
		return BandMid
	default:
		return BandLow
	}
}

// BandFor returns the band of a section or sub-report score. Lower bounds are
// inclusive: 90 is high, 40 is mid.
func BandFor(score analysis.Number) Band {
	return scoreBands.band(score)
}

// HeadlineBandFor returns the band of an overall score.
func HeadlineBandFor(score analysis.Number) Band {
	return headlineBands.band(score)
}
