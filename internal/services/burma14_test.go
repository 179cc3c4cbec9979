package services

import (
	"context"
	"path/filepath"
	"testing"
	"tsp-tour-service/internal/domain"
	"tsp-tour-service/internal/tsplib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurma14(t *testing.T) {
	p, err := tsplib.ParseFile(filepath.Join("..", "tsplib", "testdata", "burma14.tsp"))
	require.NoError(t, err)

	results, err := EvaluateProblem(context.Background(), p, domain.AllHeuristics)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, 4562, results[0].Length)

	assert.Equal(t, domain.Tour{1, 8, 11, 9, 10, 2, 14, 3, 4, 12, 6, 7, 13, 5, 1}, results[1].Tour)
	assert.Equal(t, 4048, results[1].Length)

	assert.Equal(t, domain.Tour{1, 5, 10, 4, 9, 3, 11, 6, 2, 12, 8, 7, 14, 13, 1}, results[2].Tour)
	assert.Equal(t, 8854, results[2].Length)

	// Published optimum for burma14.
	opt := domain.Tour{1, 2, 14, 3, 4, 5, 6, 12, 7, 13, 8, 11, 9, 10, 1}
	length, err := TourLength(p, opt)
	require.NoError(t, err)
	assert.Equal(t, 3323, length)
}
