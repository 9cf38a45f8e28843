package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsOtherwiseValidExceptMtry(t *testing.T) {
	c := Default()
	c.Mtry = 5
	assert.NoError(t, c.Validate())
}

func TestValidateRejectsZeroCIGroupSize(t *testing.T) {
	c := Default()
	c.Mtry = 5
	c.CIGroupSize = 0
	assert.Error(t, c.Validate())
}

func TestValidateRejectsZeroMtry(t *testing.T) {
	c := Default()
	assert.Error(t, c.Validate())
}

func TestValidateRejectsNumTreesNotMultipleOfCIGroupSize(t *testing.T) {
	c := Default()
	c.Mtry = 5
	c.CIGroupSize = 3
	c.NumTrees = 10
	assert.Error(t, c.Validate())
}

func TestValidateRejectsOverlappingDeterministicAndNoSplitVars(t *testing.T) {
	c := Default()
	c.Mtry = 5
	c.DeterministicVars = []uint{1, 2}
	c.NoSplitVariables = []uint{2, 3}
	assert.Error(t, c.Validate())
}

func TestValidateRejectsMismatchedSplitSelectWeights(t *testing.T) {
	c := Default()
	c.Mtry = 5
	c.SplitSelectVars = []uint{0, 1, 2}
	c.SplitSelectWeights = []float64{0.5, 0.5}
	assert.Error(t, c.Validate())
}

func TestFromYAMLOverridesDefaults(t *testing.T) {
	doc := []byte("num_trees: 500\nmtry: 4\nseed: 7\n")
	c, err := FromYAML(doc)
	require.NoError(t, err)
	assert.Equal(t, uint(500), c.NumTrees)
	assert.Equal(t, uint(4), c.Mtry)
	assert.Equal(t, uint64(7), c.Seed)
	assert.Equal(t, Default().CIGroupSize, c.CIGroupSize)
}
