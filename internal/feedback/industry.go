package feedback

import (
	"strings"

	"resume-feedback/internal/analysis"
)

const listDelimiter = ", "

type subReportField struct {
	label  string
	values func(analysis.IndustrySubReport) analysis.Strings
}

func field(name string, values func(analysis.IndustrySubReport) analysis.Strings) subReportField {
	return subReportField{label: FormatIndustry(name), values: values}
}

// subReportFields is the display order of the optional sub-report lists.
var subReportFields = []subReportField{
	field("found_skills", func(r analysis.IndustrySubReport) analysis.Strings { return r.FoundSkills }),
	field("missing_important_skills", func(r analysis.IndustrySubReport) analysis.Strings { return r.MissingImportantSkills }),
	field("found_sections", func(r analysis.IndustrySubReport) analysis.Strings { return r.FoundSections }),
	field("missing_sections", func(r analysis.IndustrySubReport) analysis.Strings { return r.MissingSections }),
	field("found_verbs", func(r analysis.IndustrySubReport) analysis.Strings { return r.FoundVerbs }),
	field("recommended_verbs", func(r analysis.IndustrySubReport) analysis.Strings { return r.RecommendedVerbs }),
	field("achievement_phrases_found", func(r analysis.IndustrySubReport) analysis.Strings { return r.AchievementPhrasesFound }),
}

// FormatIndustrySubReport renders one industry sub-report under title. It
// returns nil when the payload has no industry analysis or no sub-report
// for key. A list that is present but empty still gets a line.
func FormatIndustrySubReport(result analysis.Result, title, key string) *Block {
	sub, ok := result.IndustryAnalysis.SubReport(key)
	if !ok {
		return nil
	}
	block := &Block{Title: title, Bar: newScoreBar(sub.Score), Lines: []Line{}}
	for _, f := range subReportFields {
		list := f.values(sub)
		if !list.Present {
			continue
		}
		block.Lines = append(block.Lines, Line{Label: f.label, Text: strings.Join(list.Values, listDelimiter)})
	}
	return block
}
