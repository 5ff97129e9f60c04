package analysis

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

func TestDecodeFullResult(t *testing.T) {
	raw, err := os.ReadFile("testdata/full_result.json")
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	payload, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	result := payload.Result

	if result.OverallScore.String() != "78" {
		t.Fatalf("expected overall score 78, got %q", result.OverallScore.String())
	}
	if result.WordCount.String() != "412" {
		t.Fatalf("expected word count 412, got %q", result.WordCount.String())
	}
	if len(result.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(result.Sections))
	}
	skills := result.Sections[SectionSkills]
	if !skills.Exists || !skills.Feedback.Present || skills.Feedback.Len() != 0 {
		t.Fatalf("expected skills to exist with present empty feedback, got %+v", skills)
	}
	if result.Sections[SectionProjects].Exists {
		t.Fatalf("expected projects to be missing")
	}
	if result.IndustryAnalysis == nil {
		t.Fatalf("expected industry analysis")
	}
	if result.IndustryAnalysis.Industry.Value != "data_scientist" {
		t.Fatalf("unexpected industry: %q", result.IndustryAnalysis.Industry.Value)
	}
	verbs, ok := result.IndustryAnalysis.SubReport(SubReportVerbs)
	if !ok {
		t.Fatalf("expected verbs sub-report")
	}
	if !reflect.DeepEqual(verbs.FoundVerbs.Values, []string{"analyzed"}) {
		t.Fatalf("unexpected found verbs: %v", verbs.FoundVerbs.Values)
	}
	if verbs.FoundSkills.Present {
		t.Fatalf("expected found_skills absent on verbs sub-report")
	}
	sections, _ := result.IndustryAnalysis.SubReport(SubReportSections)
	if !sections.MissingSections.Present || sections.MissingSections.Len() != 0 {
		t.Fatalf("expected missing_sections present and empty")
	}
	if result.Sentiment == nil || result.Sentiment.Polarity.String() != "0.12" {
		t.Fatalf("unexpected sentiment: %+v", result.Sentiment)
	}
	if string(payload.Raw) != string(raw) {
		t.Fatalf("expected raw payload to be kept verbatim")
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{"overall_score": `))
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestDecodeToleratesSchemaDrift(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		check func(t *testing.T, r Result)
	}{
		{
			name: "root is not an object",
			raw:  `[1, 2, 3]`,
			check: func(t *testing.T, r Result) {
				if r.OverallScore.Present || r.Sections != nil || r.IndustryAnalysis != nil {
					t.Fatalf("expected empty result, got %+v", r)
				}
			},
		},
		{
			name: "sections is a string",
			raw:  `{"sections": "none"}`,
			check: func(t *testing.T, r Result) {
				if r.Sections != nil {
					t.Fatalf("expected nil sections, got %v", r.Sections)
				}
			},
		},
		{
			name: "null section entry is skipped",
			raw:  `{"sections": {"education": null, "skills": {"exists": true}}}`,
			check: func(t *testing.T, r Result) {
				if _, ok := r.Sections[SectionEducation]; ok {
					t.Fatalf("expected education to be absent")
				}
				skills, ok := r.Sections[SectionSkills]
				if !ok || !skills.Exists {
					t.Fatalf("expected skills to exist")
				}
				if skills.Score.Present || skills.Feedback.Present {
					t.Fatalf("expected score and feedback absent, got %+v", skills)
				}
			},
		},
		{
			name: "score is a string",
			raw:  `{"overall_score": "high", "word_count": 10}`,
			check: func(t *testing.T, r Result) {
				if r.OverallScore.Present {
					t.Fatalf("expected overall score absent")
				}
				if r.WordCount.String() != "10" {
					t.Fatalf("expected word count 10, got %q", r.WordCount.String())
				}
			},
		},
		{
			name: "exists is mistyped",
			raw:  `{"sections": {"skills": {"exists": "yes", "score": 50}}}`,
			check: func(t *testing.T, r Result) {
				if r.Sections[SectionSkills].Exists {
					t.Fatalf("expected mistyped exists to decode as false")
				}
			},
		},
		{
			name: "industry analysis is null",
			raw:  `{"industry_analysis": null}`,
			check: func(t *testing.T, r Result) {
				if r.IndustryAnalysis != nil {
					t.Fatalf("expected nil industry analysis")
				}
			},
		},
		{
			name: "unsupported industry error",
			raw:  `{"industry_analysis": {"error": "Industry 'law' not supported"}}`,
			check: func(t *testing.T, r Result) {
				if r.IndustryAnalysis == nil || r.IndustryAnalysis.Error.Value != "Industry 'law' not supported" {
					t.Fatalf("expected industry error, got %+v", r.IndustryAnalysis)
				}
				if _, ok := r.IndustryAnalysis.SubReport(SubReportSkills); ok {
					t.Fatalf("expected no sub-reports")
				}
			},
		},
		{
			name: "list with null and numbers",
			raw:  `{"suggestions": ["a", null, 3]}`,
			check: func(t *testing.T, r Result) {
				if !reflect.DeepEqual(r.Suggestions.Values, []string{"a", "", "3"}) {
					t.Fatalf("unexpected suggestions: %q", r.Suggestions.Values)
				}
			},
		},
		{
			name: "list is an object",
			raw:  `{"strengths": {"a": 1}}`,
			check: func(t *testing.T, r Result) {
				if r.Strengths.Present {
					t.Fatalf("expected strengths absent")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := Decode([]byte(tc.raw))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			tc.check(t, payload.Result)
		})
	}
}

func TestNilIndustryReportSubReport(t *testing.T) {
	var report *IndustryReport
	if _, ok := report.SubReport(SubReportSkills); ok {
		t.Fatalf("expected nil report to have no sub-reports")
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		in   Number
		want string
	}{
		{in: Number{}, want: ""},
		{in: NumberOf(85), want: "85"},
		{in: NumberOf(0), want: "0"},
		{in: NumberOf(42.5), want: "42.5"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Fatalf("Number(%+v).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
