package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"tsp-tour-service/internal/api/dto"
	"tsp-tour-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleEvaluations() []domain.Evaluation {
	return []domain.Evaluation{
		{
			Path: "data/tri3.tsp",
			Problem: &domain.Problem{
				Name:             "tri3",
				CoordinateSystem: domain.Planar,
				Dimension:        3,
			},
			Results: []domain.HeuristicResult{
				{Heuristic: domain.InOrder, Tour: domain.Tour{1, 2, 3, 1}, Length: 12},
				{Heuristic: domain.NearestNeighbor, Tour: domain.Tour{1, 2, 3, 1}, Length: 12},
				{Heuristic: domain.FurthestNeighbor, Tour: domain.Tour{1, 3, 2, 1}, Length: 12},
			},
		},
		{
			Path: "data/broken.tsp",
			Err:  errors.New("tsplib: malformed header: line 3: DIMENSION missing before coordinate section"),
		},
	}
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, Text, false).Report(sampleEvaluations(), nil))

	want := "" +
		"TSP Problem:              tri3\n" +
		"PATH:                     data/tri3.tsp\n" +
		"IN-ORDER TOUR LENGTH:     12\n" +
		"NEAREST NEIGHBOR LENGTH:  12\n" +
		"FURTHEST NEIGHBOR LENGTH: 12\n" +
		"\n" +
		"PATH:                     data/broken.tsp\n" +
		"ERROR:                    tsplib: malformed header: line 3: DIMENSION missing before coordinate section\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReportWithToursAndSummary(t *testing.T) {
	evals := sampleEvaluations()[:1]
	evals[0].Results = evals[0].Results[2:]

	summary := []domain.HeuristicSummary{
		{Heuristic: domain.FurthestNeighbor, Files: 1, Mean: 12, Median: 12, Min: 12, Max: 12},
	}

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, Text, true).Report(evals, summary))

	out := buf.String()
	assert.Contains(t, out, "FURTHEST NEIGHBOR LENGTH: 12\nTOUR:                     [1 3 2 1]\n")
	assert.Contains(t, out, "SUMMARY\nFURTHEST NEIGHBOR LENGTH: files=1 mean=12.00 median=12.00 min=12 max=12\n")
}

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, JSON, true).Report(sampleEvaluations(), nil))

	var doc dto.ReportResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Problems, 2)

	p := doc.Problems[0]
	assert.Equal(t, "tri3", p.Name)
	assert.Equal(t, "EUC_2D", p.EdgeWeightType)
	require.Len(t, p.Results, 3)
	assert.Equal(t, "furthest-neighbor", p.Results[2].Heuristic)
	assert.Equal(t, []int{1, 3, 2, 1}, p.Results[2].Tour)

	assert.Contains(t, doc.Problems[1].Error, "malformed header")
	assert.Empty(t, doc.Summary)
}

func TestYAMLReportOmitsToursByDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf, YAML, false).Report(sampleEvaluations()[:1], nil))

	var doc dto.ReportResponse
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Problems, 1)
	require.Len(t, doc.Problems[0].Results, 3)
	assert.Equal(t, 12, doc.Problems[0].Results[0].Length)
	assert.Nil(t, doc.Problems[0].Results[0].Tour)
	assert.NotContains(t, buf.String(), "tour:")
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": Text, "TEXT": Text, "yaml": YAML, "yml": YAML, " json ": JSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("csv")
	require.Error(t, err)
}
