package feedback

import "resume-feedback/internal/analysis"

const missingSectionText = "This section is missing from your resume"

// FormatSection renders the named section of result. It returns nil when the
// payload has no entry for key.
func FormatSection(result analysis.Result, key string) *Block {
	section, ok := result.Sections[key]
	if !ok {
		return nil
	}
	block := &Block{Title: capitalize(key), Lines: []Line{}}
	if !section.Exists {
		block.Notice = &Notice{Kind: NoticeWarning, Text: missingSectionText}
		return block
	}
	block.Bar = newScoreBar(section.Score)
	for _, item := range section.Feedback.Values {
		block.Lines = append(block.Lines, Line{Text: item})
	}
	return block
}
