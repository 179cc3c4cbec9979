package services

import (
	"context"
	"testing"
	"tsp-tour-service/internal/domain"
	"tsp-tour-service/internal/ports"
	"tsp-tour-service/internal/tsplib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleTSP = `NAME: tri3
TYPE: TSP
DIMENSION: 3
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 0
3 3 4
EOF
`

const lineTSP = `NAME: line4
DIMENSION: 4
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 10 0
3 -10 0
4 5 0
`

const missingDimensionTSP = `NAME: broken
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
`

func TestEvaluateProblemKeepsHeuristicOrder(t *testing.T) {
	heuristics := []domain.Heuristic{domain.FurthestNeighbor, domain.InOrder, domain.NearestNeighbor}

	results, err := EvaluateProblem(context.Background(), lineProblem(), heuristics)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, domain.FurthestNeighbor, results[0].Heuristic)
	assert.Equal(t, 50, results[0].Length)
	assert.Equal(t, domain.InOrder, results[1].Heuristic)
	assert.Equal(t, 50, results[1].Length)
	assert.Equal(t, domain.NearestNeighbor, results[2].Heuristic)
	assert.Equal(t, 40, results[2].Length)
	assert.Equal(t, domain.Tour{1, 4, 2, 3, 1}, results[2].Tour)
}

func TestEvaluateFileRecordsParseError(t *testing.T) {
	eval := EvaluateFile(context.Background(), ports.ProblemFile{Path: "broken.tsp", Body: []byte(missingDimensionTSP)}, domain.AllHeuristics)

	require.ErrorIs(t, eval.Err, tsplib.ErrMalformedHeader)
	assert.Equal(t, "broken.tsp", eval.Path)
	assert.Nil(t, eval.Problem)
	assert.Empty(t, eval.Results)
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	files := []ports.ProblemFile{
		{Path: "a/tri3.tsp", Body: []byte(triangleTSP)},
		{Path: "a/broken.tsp", Body: []byte(missingDimensionTSP)},
		{Path: "a/line4.tsp", Body: []byte(lineTSP)},
	}

	evals := ProcessBatch(context.Background(), files, BatchOptions{
		Heuristics: []domain.Heuristic{domain.InOrder, domain.NearestNeighbor},
		Workers:    2,
	})
	require.Len(t, evals, 3)

	for i, f := range files {
		assert.Equal(t, f.Path, evals[i].Path)
	}

	require.NoError(t, evals[0].Err)
	assert.Equal(t, "tri3", evals[0].Problem.Name)
	assert.Equal(t, 12, evals[0].Results[0].Length)
	assert.Equal(t, 12, evals[0].Results[1].Length)

	require.ErrorIs(t, evals[1].Err, tsplib.ErrMalformedHeader)

	require.NoError(t, evals[2].Err)
	assert.Equal(t, 50, evals[2].Results[0].Length)
	assert.Equal(t, 40, evals[2].Results[1].Length)
}

func TestProcessBatchIsolatesHugeDimension(t *testing.T) {
	files := []ports.ProblemFile{
		{Path: "ok.tsp", Body: []byte("NAME: ok\nDIMENSION: 1\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n")},
		{Path: "huge.tsp", Body: []byte("NAME: huge\nDIMENSION: 999999999999999\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n")},
	}

	evals := ProcessBatch(context.Background(), files, BatchOptions{
		Heuristics: domain.AllHeuristics,
		Workers:    1,
	})
	require.Len(t, evals, 2)

	require.NoError(t, evals[0].Err)
	assert.Equal(t, domain.Tour{1, 1}, evals[0].Results[0].Tour)

	require.ErrorIs(t, evals[1].Err, tsplib.ErrMalformedCity)
	assert.Contains(t, evals[1].Err.Error(), "unexpected end of input")
	assert.Nil(t, evals[1].Problem)
}

func TestProcessBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	evals := ProcessBatch(ctx, []ports.ProblemFile{{Path: "tri3.tsp", Body: []byte(triangleTSP)}}, BatchOptions{
		Heuristics: domain.AllHeuristics,
	})
	require.Len(t, evals, 1)
	require.ErrorIs(t, evals[0].Err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	files := []ports.ProblemFile{
		{Path: "tri3.tsp", Body: []byte(triangleTSP)},
		{Path: "line4.tsp", Body: []byte(lineTSP)},
		{Path: "broken.tsp", Body: []byte(missingDimensionTSP)},
	}
	evals := ProcessBatch(context.Background(), files, BatchOptions{Heuristics: []domain.Heuristic{domain.InOrder}})

	summary, err := Summarize(evals)
	require.NoError(t, err)
	require.Len(t, summary, 1)

	s := summary[0]
	assert.Equal(t, domain.InOrder, s.Heuristic)
	assert.Equal(t, 2, s.Files)
	assert.InDelta(t, 31.0, s.Mean, 1e-9)
	assert.InDelta(t, 31.0, s.Median, 1e-9)
	assert.InDelta(t, 12.0, s.Min, 1e-9)
	assert.InDelta(t, 50.0, s.Max, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	summary, err := Summarize(nil)
	require.NoError(t, err)
	assert.Empty(t, summary)
}
