package analysis

import (
	"encoding/json"
	"errors"
)

// ErrInvalidPayload is returned when the payload is not valid JSON.
var ErrInvalidPayload = errors.New("invalid analysis payload")

// Section names reported by the analysis service, in display order.
const (
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// SectionKeys lists every known section in display order.
var SectionKeys = []string{SectionEducation, SectionExperience, SectionSkills, SectionProjects}

// Industry sub-report keys, in display order.
const (
	SubReportSkills       = "skills_analysis"
	SubReportSections     = "sections_analysis"
	SubReportVerbs        = "verbs_analysis"
	SubReportAchievements = "achievements_analysis"
)

// SubReportKeys lists every known industry sub-report in display order.
var SubReportKeys = []string{SubReportSkills, SubReportSections, SubReportVerbs, SubReportAchievements}

// Result is the analysis payload for one submission.
type Result struct {
	OverallScore     Number
	WordCount        Number
	Sections         map[string]SectionReport
	Suggestions      Strings
	Strengths        Strings
	IndustryAnalysis *IndustryReport
	Sentiment        *Sentiment
}

// SectionReport scores one resume section. Score and Feedback are only
// meaningful when Exists is true.
type SectionReport struct {
	Exists   bool
	Score    Number
	Feedback Strings
}

// IndustryReport compares the resume against the chosen job role profile.
type IndustryReport struct {
	Industry     Text
	OverallScore Number
	Suggestions  Strings
	// Error is set by the service when the role is not supported.
	Error      Text
	SubReports map[string]IndustrySubReport
}

// SubReport returns the named sub-report and whether it was present.
func (r *IndustryReport) SubReport(key string) (IndustrySubReport, bool) {
	if r == nil {
		return IndustrySubReport{}, false
	}
	sub, ok := r.SubReports[key]
	return sub, ok
}

// IndustrySubReport is one lens of the industry report. Every list is optional.
type IndustrySubReport struct {
	Score                   Number
	FoundSkills             Strings
	MissingImportantSkills  Strings
	FoundSections           Strings
	MissingSections         Strings
	FoundVerbs              Strings
	RecommendedVerbs        Strings
	AchievementPhrasesFound Strings
}

// Sentiment is the tone estimate some service versions attach to a result.
type Sentiment struct {
	Polarity     Number
	Subjectivity Number
}

// Payload pairs a decoded result with the bytes it was decoded from.
type Payload struct {
	Result Result
	Raw    json.RawMessage
}

// Decode parses a service response. Only syntactically invalid JSON is an
// error; missing or mistyped fields decode as absent.
func Decode(data []byte) (Payload, error) {
	if !json.Valid(data) {
		return Payload{}, ErrInvalidPayload
	}
	var result Result
	_ = result.UnmarshalJSON(data)
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	return Payload{Result: result, Raw: raw}, nil
}

// UnmarshalJSON decodes leniently and never fails.
func (r *Result) UnmarshalJSON(data []byte) error {
	*r = Result{}
	fields, ok := objectFields(data)
	if !ok {
		return nil
	}
	decodeField(fields, "overall_score", &r.OverallScore)
	decodeField(fields, "word_count", &r.WordCount)
	decodeField(fields, "suggestions", &r.Suggestions)
	decodeField(fields, "strengths", &r.Strengths)

	if raw, ok := fields["sections"]; ok {
		if sections, ok := objectFields(raw); ok {
			r.Sections = make(map[string]SectionReport, len(sections))
			for name, body := range sections {
				if _, ok := objectFields(body); !ok {
					continue
				}
				var section SectionReport
				_ = section.UnmarshalJSON(body)
				r.Sections[name] = section
			}
		}
	}
	if raw, ok := fields["industry_analysis"]; ok {
		if _, ok := objectFields(raw); ok {
			var industry IndustryReport
			_ = industry.UnmarshalJSON(raw)
			r.IndustryAnalysis = &industry
		}
	}
	if raw, ok := fields["sentiment"]; ok {
		if sentiment, ok := objectFields(raw); ok {
			r.Sentiment = &Sentiment{}
			decodeField(sentiment, "polarity", &r.Sentiment.Polarity)
			decodeField(sentiment, "subjectivity", &r.Sentiment.Subjectivity)
		}
	}
	return nil
}

// UnmarshalJSON decodes leniently and never fails.
func (s *SectionReport) UnmarshalJSON(data []byte) error {
	*s = SectionReport{}
	fields, ok := objectFields(data)
	if !ok {
		return nil
	}
	decodeField(fields, "exists", &s.Exists)
	decodeField(fields, "score", &s.Score)
	decodeField(fields, "feedback", &s.Feedback)
	return nil
}

// UnmarshalJSON decodes leniently and never fails.
func (r *IndustryReport) UnmarshalJSON(data []byte) error {
	*r = IndustryReport{}
	fields, ok := objectFields(data)
	if !ok {
		return nil
	}
	decodeField(fields, "industry", &r.Industry)
	decodeField(fields, "overall_score", &r.OverallScore)
	decodeField(fields, "suggestions", &r.Suggestions)
	decodeField(fields, "error", &r.Error)
	for _, key := range SubReportKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if _, ok := objectFields(raw); !ok {
			continue
		}
		var sub IndustrySubReport
		_ = sub.UnmarshalJSON(raw)
		if r.SubReports == nil {
			r.SubReports = make(map[string]IndustrySubReport, len(SubReportKeys))
		}
		r.SubReports[key] = sub
	}
	return nil
}

// UnmarshalJSON decodes leniently and never fails.
func (s *IndustrySubReport) UnmarshalJSON(data []byte) error {
	*s = IndustrySubReport{}
	fields, ok := objectFields(data)
	if !ok {
		return nil
	}
	decodeField(fields, "score", &s.Score)
	decodeField(fields, "found_skills", &s.FoundSkills)
	decodeField(fields, "missing_important_skills", &s.MissingImportantSkills)
	decodeField(fields, "found_sections", &s.FoundSections)
	decodeField(fields, "missing_sections", &s.MissingSections)
	decodeField(fields, "found_verbs", &s.FoundVerbs)
	decodeField(fields, "recommended_verbs", &s.RecommendedVerbs)
	decodeField(fields, "achievement_phrases_found", &s.AchievementPhrasesFound)
	return nil
}

// objectFields splits a JSON object into its raw members. ok is false for
// anything other than a non-null object.
func objectFields(data []byte) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func decodeField(fields map[string]json.RawMessage, key string, dst any) {
	raw, ok := fields[key]
	if !ok {
		return
	}
	// Mismatched scalars leave dst at its zero value.
	_ = json.Unmarshal(raw, dst)
}
