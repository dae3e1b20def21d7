package binpack2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackAlgoValidate(t *testing.T) {
	for _, a := range []PackAlgo{GuillotineAlgo, MaximalRectangleAlgo, ShelfAlgo, SkylineAlgo} {
		assert.NoError(t, a.Validate())
	}
	assert.Error(t, PackAlgo(99).Validate())
}

func TestBinAlgoValidate(t *testing.T) {
	assert.NoError(t, BinFirstFit.Validate())
	assert.NoError(t, BinBestFit.Validate())
	assert.Error(t, BinAlgo(99).Validate())
}

func TestSplitHeuristicValidate(t *testing.T) {
	for _, s := range []SplitHeuristic{SAS, LAS, SLAS, LLAS, SDAS, LDAS} {
		assert.NoError(t, s.Validate())
	}
	assert.Error(t, SplitHeuristic(99).Validate())
}

func TestHeuristicValidate_PerAlgorithmVocabulary(t *testing.T) {
	require.NoError(t, BestArea.Validate(GuillotineAlgo))
	require.Error(t, ContactPoint.Validate(GuillotineAlgo))

	require.NoError(t, ContactPoint.Validate(MaximalRectangleAlgo))
	require.NoError(t, BottomLeft.Validate(MaximalRectangleAlgo))
	require.Error(t, NextFit.Validate(MaximalRectangleAlgo))

	require.NoError(t, NextFit.Validate(ShelfAlgo))
	require.NoError(t, BestAreaFit.Validate(ShelfAlgo))
	require.Error(t, BestArea.Validate(ShelfAlgo))

	require.NoError(t, BottomLeft.Validate(SkylineAlgo))
	require.NoError(t, BestFit.Validate(SkylineAlgo))
	require.Error(t, ContactPoint.Validate(SkylineAlgo))
}

func TestPackAlgoString(t *testing.T) {
	require.Equal(t, "guillotine", GuillotineAlgo.String())
	require.Equal(t, "maximal_rectangle", MaximalRectangleAlgo.String())
	require.Equal(t, "shelf", ShelfAlgo.String())
	require.Equal(t, "skyline", SkylineAlgo.String())
	require.Equal(t, "unknown", PackAlgo(99).String())
}
