package feedback

import "resume-feedback/internal/analysis"

// NoticeKind selects how a notice is presented.
type NoticeKind string

const (
	NoticeWarning NoticeKind = "warning"
	NoticeSuccess NoticeKind = "success"
)

// Notice is a standalone message shown in place of missing content.
type Notice struct {
	Kind NoticeKind `json:"kind"`
	Text string     `json:"text"`
}

// ScoreBar is a labeled progress bar.
type ScoreBar struct {
	// Score is the display text, empty when the score was absent.
	Score   string  `json:"score"`
	Percent float64 `json:"percent"`
	Band    Band    `json:"band"`
}

func newScoreBar(score analysis.Number) *ScoreBar {
	return &ScoreBar{
		Score:   score.String(),
		Percent: score.Value,
		Band:    BandFor(score),
	}
}

// Line is one entry of a feedback list. Label is empty for plain entries.
type Line struct {
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

// String renders the line as "Label: Text", or just Text when unlabeled.
func (l Line) String() string {
	if l.Label == "" {
		return l.Text
	}
	return l.Label + ": " + l.Text
}

// Block is a titled unit of feedback: an optional score bar, an optional
// notice, and zero or more lines.
type Block struct {
	Title  string    `json:"title"`
	Bar    *ScoreBar `json:"bar,omitempty"`
	Notice *Notice   `json:"notice,omitempty"`
	Lines  []Line    `json:"lines"`
}
