package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"tsp-tour-service/internal/api/dto"
	"tsp-tour-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	JSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, YAML, JSON:
		return f, nil
	case "":
		return Text, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("parse format: unknown report format %q", s)
}

// Width of the label column in the text report.
const labelWidth = 26

// Writer implements the Reporter port for console output.
type Writer struct {
	Out        io.Writer
	Format     Format
	PrintTours bool
}

func NewWriter(out io.Writer, format Format, printTours bool) *Writer {
	return &Writer{Out: out, Format: format, PrintTours: printTours}
}

func (w *Writer) Report(evals []domain.Evaluation, summary []domain.HeuristicSummary) error {
	switch w.Format {
	case Text, "":
		return w.text(evals, summary)
	case YAML:
		enc := yaml.NewEncoder(w.Out)
		enc.SetIndent(2)
		if err := enc.Encode(w.document(evals, summary)); err != nil {
			return fmt.Errorf("report yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report yaml: %w", err)
		}
		return nil
	case JSON:
		enc := json.NewEncoder(w.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(w.document(evals, summary)); err != nil {
			return fmt.Errorf("report json: %w", err)
		}
		return nil
	}
	return fmt.Errorf("report: unsupported format %q", w.Format)
}

func (w *Writer) document(evals []domain.Evaluation, summary []domain.HeuristicSummary) dto.ReportResponse {
	doc := dto.ReportResponse{Problems: make([]dto.ProblemResponse, 0, len(evals))}
	for _, e := range evals {
		doc.Problems = append(doc.Problems, dto.FromEvaluation(e, w.PrintTours))
	}
	for _, s := range summary {
		doc.Summary = append(doc.Summary, dto.FromSummary(s))
	}
	return doc
}

func (w *Writer) text(evals []domain.Evaluation, summary []domain.HeuristicSummary) error {
	var b strings.Builder

	for _, e := range evals {
		if e.Err != nil {
			line(&b, "PATH", e.Path)
			line(&b, "ERROR", e.Err.Error())
			b.WriteString("\n")
			continue
		}

		name := ""
		if e.Problem != nil {
			name = e.Problem.Name
		}
		line(&b, "TSP Problem", name)
		line(&b, "PATH", e.Path)
		for _, r := range e.Results {
			line(&b, r.Heuristic.Label(), r.Length)
			if w.PrintTours {
				line(&b, "TOUR", r.Tour)
			}
		}
		b.WriteString("\n")
	}

	if len(summary) > 0 {
		b.WriteString("SUMMARY\n")
		for _, s := range summary {
			line(&b, s.Heuristic.Label(), fmt.Sprintf(
				"files=%d mean=%.2f median=%.2f min=%.0f max=%.0f",
				s.Files, s.Mean, s.Median, s.Min, s.Max,
			))
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w.Out, b.String()); err != nil {
		return fmt.Errorf("report text: %w", err)
	}
	return nil
}

func line(b *strings.Builder, label string, value any) {
	fmt.Fprintf(b, "%-*s%v\n", labelWidth, label+":", value)
}
