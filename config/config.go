// Package config holds the Config record a forest is trained with and its
// validation rules.
package config

import "github.com/pbanos/grf/grferrors"

// Config enumerates every training-time parameter of a forest, per the
// external interfaces a host program is expected to supply.
type Config struct {
	NumTrees           uint      `yaml:"num_trees"`
	CIGroupSize        uint      `yaml:"ci_group_size"`
	Mtry               uint      `yaml:"mtry"`
	MinNodeSize        uint      `yaml:"min_node_size"`
	Honesty            bool      `yaml:"honesty"`
	HonestyFraction    float64   `yaml:"honesty_fraction"`
	SampleFraction     float64   `yaml:"sample_fraction"`
	DeterministicVars  []uint    `yaml:"deterministic_vars"`
	NoSplitVariables   []uint    `yaml:"no_split_variables"`
	SplitSelectVars    []uint    `yaml:"split_select_vars"`
	SplitSelectWeights  []float64 `yaml:"split_select_weights"`
	Alpha               float64   `yaml:"alpha"`
	SplitRegularization float64   `yaml:"split_regularization"`
	Seed                uint64    `yaml:"seed"`
}

// Default returns a Config with the reference defaults named in the
// external interfaces: a single-tree-per-group CI setup, honesty enabled
// at the historical 0.5 fraction (surfaced here as a tunable, unlike the
// source it's grounded on), and a half sample fraction.
func Default() Config {
	return Config{
		NumTrees:        2000,
		CIGroupSize:     1,
		Mtry:            0,
		MinNodeSize:     5,
		Honesty:         true,
		HonestyFraction: 0.5,
		SampleFraction:  0.5,
		Alpha:           0.05,
	}
}

// Validate checks the configuration for the invalid states named in the
// error handling design: zero CI group size, zero mtry, and
// deterministic/no-split variables that overlap.
func (c Config) Validate() error {
	if c.CIGroupSize == 0 {
		return &grferrors.ConfigInvalid{Reason: "ci_group_size must be >= 1"}
	}
	if c.Mtry == 0 {
		return &grferrors.ConfigInvalid{Reason: "mtry must be >= 1"}
	}
	if c.NumTrees == 0 {
		return &grferrors.ConfigInvalid{Reason: "num_trees must be >= 1"}
	}
	if c.NumTrees%c.CIGroupSize != 0 {
		return &grferrors.ConfigInvalid{Reason: "num_trees must be a multiple of ci_group_size"}
	}
	if c.HonestyFraction <= 0 || c.HonestyFraction >= 1 {
		return &grferrors.ConfigInvalid{Reason: "honesty_fraction must be in (0, 1)"}
	}
	if c.SampleFraction <= 0 || c.SampleFraction > 1 {
		return &grferrors.ConfigInvalid{Reason: "sample_fraction must be in (0, 1]"}
	}
	noSplit := make(map[uint]bool, len(c.NoSplitVariables))
	for _, v := range c.NoSplitVariables {
		noSplit[v] = true
	}
	for _, v := range c.DeterministicVars {
		if noSplit[v] {
			return &grferrors.ConfigInvalid{Reason: "a variable cannot be both deterministic and no-split"}
		}
	}
	if len(c.SplitSelectWeights) > 0 && len(c.SplitSelectWeights) != len(c.SplitSelectVars) {
		return &grferrors.ConfigInvalid{Reason: "split_select_weights must have the same length as split_select_vars when present"}
	}
	return nil
}
