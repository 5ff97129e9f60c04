package feedback

import "resume-feedback/internal/analysis"

const (
	noSuggestionsText = "Great job! We don't have any major suggestions for improvement."
	noStrengthsText   = "We couldn't identify any particular strengths. Follow our suggestions to improve your resume."
)

// industryLenses are the industry sub-reports in display order.
var industryLenses = []struct {
	title string
	key   string
}{
	{title: "Skills Analysis", key: analysis.SubReportSkills},
	{title: "Sections Analysis", key: analysis.SubReportSections},
	{title: "Verbs Analysis", key: analysis.SubReportVerbs},
	{title: "Achievements", key: analysis.SubReportAchievements},
}

// Headline is a large standalone score.
type Headline struct {
	Score string `json:"score"`
	Band  Band   `json:"band"`
}

func newHeadline(score analysis.Number) Headline {
	return Headline{Score: score.String(), Band: HeadlineBandFor(score)}
}

// ListBlock is a titled list of items with a fallback notice when empty.
type ListBlock struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
	Empty *Notice  `json:"empty,omitempty"`
}

func newListBlock(title string, items analysis.Strings, empty Notice) ListBlock {
	if items.Len() == 0 {
		return ListBlock{Title: title, Items: []string{}, Empty: &empty}
	}
	return ListBlock{Title: title, Items: items.Values}
}

// Statistics holds the resume metrics shown below the feedback.
type Statistics struct {
	WordCount    string `json:"wordCount"`
	Polarity     string `json:"polarity,omitempty"`
	Subjectivity string `json:"subjectivity,omitempty"`
}

// IndustryCard is the industry-specific half of the report.
type IndustryCard struct {
	Title       string    `json:"title"`
	Score       Headline  `json:"score"`
	Error       *Notice   `json:"error,omitempty"`
	Lenses      []Block   `json:"lenses"`
	Suggestions ListBlock `json:"suggestions"`
}

// Report is the complete results view for one analysis.
type Report struct {
	Overall     Headline     `json:"overall"`
	Sections    []Block      `json:"sections"`
	Suggestions ListBlock    `json:"suggestions"`
	Strengths   ListBlock    `json:"strengths"`
	Statistics  Statistics   `json:"statistics"`
	Industry    IndustryCard `json:"industry"`
}

// BuildReport assembles the results view. Absent data is omitted or replaced
// by a fallback notice; it never fails.
func BuildReport(result analysis.Result) Report {
	report := Report{
		Overall:     newHeadline(result.OverallScore),
		Sections:    []Block{},
		Suggestions: newListBlock("Suggestions for Improvement", result.Suggestions, Notice{Kind: NoticeSuccess, Text: noSuggestionsText}),
		Strengths:   newListBlock("Resume Strengths", result.Strengths, Notice{Kind: NoticeWarning, Text: noStrengthsText}),
		Statistics:  Statistics{WordCount: result.WordCount.String()},
	}
	for _, key := range analysis.SectionKeys {
		if block := FormatSection(result, key); block != nil {
			report.Sections = append(report.Sections, *block)
		}
	}
	if s := result.Sentiment; s != nil {
		report.Statistics.Polarity = s.Polarity.String()
		report.Statistics.Subjectivity = s.Subjectivity.String()
	}
	report.Industry = buildIndustryCard(result)
	return report
}

func buildIndustryCard(result analysis.Result) IndustryCard {
	industry := result.IndustryAnalysis
	if industry == nil {
		industry = &analysis.IndustryReport{}
	}
	card := IndustryCard{
		Title:       "Industry Analysis: " + FormatIndustry(industry.Industry.Value),
		Score:       newHeadline(industry.OverallScore),
		Lenses:      []Block{},
		Suggestions: newListBlock("Suggestions", industry.Suggestions, Notice{Kind: NoticeSuccess, Text: noSuggestionsText}),
	}
	if industry.Error.Value != "" {
		card.Error = &Notice{Kind: NoticeWarning, Text: industry.Error.Value}
	}
	for _, lens := range industryLenses {
		if block := FormatIndustrySubReport(result, lens.title, lens.key); block != nil {
			card.Lenses = append(card.Lenses, *block)
		}
	}
	return card
}
