package feedback

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

const barWidth = 20

// WriteText renders report as plain text.
func WriteText(w io.Writer, report Report) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "ANALYSIS RESULTS")
	writeHeadline(&buf, "Overall Score", report.Overall)
	for _, block := range report.Sections {
		writeBlock(&buf, block)
	}
	writeList(&buf, report.Suggestions)
	writeList(&buf, report.Strengths)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Resume Statistics")
	fmt.Fprintf(&buf, "  Word Count: %s\n", report.Statistics.WordCount)
	if report.Statistics.Polarity != "" {
		fmt.Fprintf(&buf, "  Sentiment Polarity: %s\n", report.Statistics.Polarity)
	}
	if report.Statistics.Subjectivity != "" {
		fmt.Fprintf(&buf, "  Sentiment Subjectivity: %s\n", report.Statistics.Subjectivity)
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, strings.ToUpper(report.Industry.Title))
	writeHeadline(&buf, "Industry Score", report.Industry.Score)
	if n := report.Industry.Error; n != nil {
		writeNotice(&buf, *n)
	}
	for _, block := range report.Industry.Lenses {
		writeBlock(&buf, block)
	}
	writeList(&buf, report.Industry.Suggestions)

	_, err := w.Write(buf.Bytes())
	return err
}

func writeHeadline(buf *bytes.Buffer, title string, h Headline) {
	score := "n/a"
	if h.Score != "" {
		score = h.Score + "%"
	}
	fmt.Fprintf(buf, "%s: %s%s\n", title, score, bandSuffix(h.Band))
}

func writeBlock(buf *bytes.Buffer, block Block) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, block.Title)
	if block.Bar != nil {
		fmt.Fprintf(buf, "  %s\n", renderBar(*block.Bar))
	}
	if block.Notice != nil {
		writeNotice(buf, *block.Notice)
	}
	for _, line := range block.Lines {
		fmt.Fprintf(buf, "  - %s\n", line.String())
	}
}

func writeList(buf *bytes.Buffer, list ListBlock) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, list.Title)
	if list.Empty != nil {
		writeNotice(buf, *list.Empty)
		return
	}
	for _, item := range list.Items {
		fmt.Fprintf(buf, "  - %s\n", item)
	}
}

func writeNotice(buf *bytes.Buffer, n Notice) {
	fmt.Fprintf(buf, "  ! %s\n", n.Text)
}

func renderBar(bar ScoreBar) string {
	if bar.Score == "" {
		return "[" + strings.Repeat("-", barWidth) + "] n/a"
	}
	filled := int(bar.Percent * barWidth / 100)
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return fmt.Sprintf("[%s%s] %s%%%s", strings.Repeat("#", filled), strings.Repeat("-", barWidth-filled), bar.Score, bandSuffix(bar.Band))
}

func bandSuffix(b Band) string {
	if b == BandNone {
		return ""
	}
	return " (" + string(b) + ")"
}
