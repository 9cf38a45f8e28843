package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/pbanos/grf/config"
	grfdata "github.com/pbanos/grf/data"
	"github.com/pbanos/grf/forest"
	"github.com/pbanos/grf/grferrors"
	"github.com/pbanos/grf/prediction"
	"github.com/pbanos/grf/relabel"
	"github.com/pbanos/grf/split"
)

type trainCmdConfig struct {
	*rootCmdConfig
	input          string
	output         string
	configInput    string
	kind           string
	outcomeCol     int
	treatmentCol   int
	instrumentCol  int
	numTrees       uint
	mtry           uint
	ciGroupSize    uint
	seed           uint64
	quantiles      string
}

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	tcc := &trainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a generalized random forest from a CSV dataset",
		Long:  `Train a generalized random forest from a CSV dataset and write it to a gob-encoded model file.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := tcc.run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(tcc.input), "input", "i", "", "path to an input CSV file with data to train on (required)")
	cmd.PersistentFlags().StringVarP(&(tcc.output), "output", "o", "", "path to write the trained model to, gob-encoded (required)")
	cmd.PersistentFlags().StringVar(&(tcc.configInput), "config", "", "path to a YAML file overriding the default training configuration")
	cmd.PersistentFlags().StringVarP(&(tcc.kind), "kind", "k", "regression", "forest kind to train: regression, quantile, or instrumental")
	cmd.PersistentFlags().IntVar(&(tcc.outcomeCol), "outcome-col", -1, "column index of the outcome (required)")
	cmd.PersistentFlags().IntVar(&(tcc.treatmentCol), "treatment-col", -1, "column index of the treatment indicator (instrumental forests)")
	cmd.PersistentFlags().IntVar(&(tcc.instrumentCol), "instrument-col", -1, "column index of the instrument (instrumental forests)")
	cmd.PersistentFlags().UintVar(&(tcc.numTrees), "num-trees", 0, "number of trees to train (defaults to the config default)")
	cmd.PersistentFlags().UintVar(&(tcc.mtry), "mtry", 0, "number of candidate split variables per node (defaults to the config default)")
	cmd.PersistentFlags().UintVar(&(tcc.ciGroupSize), "ci-group-size", 0, "number of trees per confidence-interval group (defaults to the config default)")
	cmd.PersistentFlags().Uint64Var(&(tcc.seed), "seed", 0, "random seed")
	cmd.PersistentFlags().StringVar(&(tcc.quantiles), "quantiles", "0.1,0.5,0.9", "comma-separated quantile levels (quantile forests only)")
	return cmd
}

func (tcc *trainCmdConfig) run() error {
	if tcc.input == "" {
		return grferrors.New("required input flag was not set")
	}
	if tcc.output == "" {
		return grferrors.New("required output flag was not set")
	}
	if tcc.outcomeCol < 0 {
		return grferrors.New("required outcome-col flag was not set")
	}

	logger := tcc.logger()
	logger.Printf("reading training data from %s", tcc.input)
	f, err := os.Open(tcc.input)
	if err != nil {
		return grferrors.Wrapf(err, "opening input file %s", tcc.input)
	}
	defer f.Close()
	rows, err := readCSVMatrix(f)
	if err != nil {
		return err
	}

	d, obs, err := tcc.splitColumns(rows)
	if err != nil {
		return err
	}

	cfg, err := tcc.config()
	if err != nil {
		return err
	}
	if cfg.Mtry == 0 {
		cfg.Mtry = defaultMtry(d.NumCols())
	}

	relabeler, splitter, strategy, err := tcc.strategies(cfg)
	if err != nil {
		return err
	}

	logger.Printf("training %d trees over %d samples and %d features", cfg.NumTrees, d.NumRows(), d.NumCols())
	fst, err := forest.Train(cfg, d, obs, relabeler, splitter, strategy)
	if err != nil {
		return grferrors.Wrapf(err, "training forest")
	}

	out, err := os.Create(tcc.output)
	if err != nil {
		return grferrors.Wrapf(err, "creating output file %s", tcc.output)
	}
	defer out.Close()
	var buf bytes.Buffer
	if err := fst.Save(&buf); err != nil {
		return err
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return grferrors.Wrapf(err, "writing model to %s", tcc.output)
	}
	logger.Printf("wrote model to %s", tcc.output)
	return nil
}

// splitColumns carves the raw CSV rows into a feature matrix (every
// column that isn't an outcome/treatment/instrument role) and an
// Observations table keyed by whichever roles were configured.
func (tcc *trainCmdConfig) splitColumns(rows [][]float64) (*grfdata.Data, *grfdata.Observations, error) {
	if len(rows) == 0 {
		return nil, nil, grferrors.New("input file has no rows")
	}
	numCols := len(rows[0])
	roleCols := map[int]grfdata.Role{tcc.outcomeCol: grfdata.Outcome}
	if tcc.treatmentCol >= 0 {
		roleCols[tcc.treatmentCol] = grfdata.Treatment
	}
	if tcc.instrumentCol >= 0 {
		roleCols[tcc.instrumentCol] = grfdata.Instrument
	}
	for col := range roleCols {
		if col >= numCols {
			return nil, nil, grferrors.Errorf("role column %d is out of range for a %d-column input", col, numCols)
		}
	}

	featureRows := make([][]float64, len(rows))
	roleValues := make(map[grfdata.Role][]float64)
	for i, row := range rows {
		features := make([]float64, 0, numCols-len(roleCols))
		for col, v := range row {
			if role, ok := roleCols[col]; ok {
				roleValues[role] = append(roleValues[role], v)
				continue
			}
			features = append(features, v)
		}
		featureRows[i] = features
	}

	d, err := grfdata.New(featureRows)
	if err != nil {
		return nil, nil, err
	}
	byRole := make(map[grfdata.Role]*mat.Dense, len(roleValues))
	for role, values := range roleValues {
		byRole[role] = mat.NewDense(len(values), 1, values)
	}
	return d, grfdata.NewObservations(byRole), nil
}

func (tcc *trainCmdConfig) config() (config.Config, error) {
	cfg := config.Default()
	if tcc.configInput != "" {
		var err error
		cfg, err = config.FromYAMLFile(tcc.configInput)
		if err != nil {
			return config.Config{}, err
		}
	}
	if tcc.numTrees > 0 {
		cfg.NumTrees = tcc.numTrees
	}
	if tcc.mtry > 0 {
		cfg.Mtry = tcc.mtry
	}
	if tcc.ciGroupSize > 0 {
		cfg.CIGroupSize = tcc.ciGroupSize
	}
	cfg.Seed = tcc.seed
	return cfg, nil
}

func (tcc *trainCmdConfig) strategies(cfg config.Config) (relabel.Strategy, split.Rule, prediction.OptimizedStrategy, error) {
	switch tcc.kind {
	case "regression":
		return relabel.Regression{}, split.Regression{Alpha: cfg.Alpha}, prediction.RegressionStrategy{CIGroupSize: int(cfg.CIGroupSize)}, nil
	case "instrumental":
		return relabel.Instrumental{}, split.Instrumental{Alpha: cfg.Alpha}, prediction.InstrumentalStrategy{CIGroupSize: int(cfg.CIGroupSize)}, nil
	case "quantile":
		quantiles, err := parseQuantiles(tcc.quantiles)
		if err != nil {
			return nil, nil, nil, err
		}
		// Quantile forests predict through the default (weight-based)
		// strategy, so there's nothing to precompute per leaf; the tree
		// trainer still calls precompute_prediction_values, it just gets
		// handed a strategy that stores nothing.
		return relabel.Quantile{Quantiles: quantiles}, split.Quantile{Alpha: cfg.Alpha}, prediction.NoopOptimizedStrategy{}, nil
	}
	return nil, nil, nil, grferrors.Errorf("unknown forest kind %q", tcc.kind)
}

// defaultMtry mirrors the reference mtry heuristic of ceil(sqrt(p)) + 20,
// capped at the number of available features, used whenever the caller
// leaves mtry unset rather than forcing every invocation to pick one.
func defaultMtry(numFeatures int) uint {
	root := int(math.Ceil(math.Sqrt(float64(numFeatures)))) + 20
	if root > numFeatures {
		root = numFeatures
	}
	if root < 1 {
		root = 1
	}
	return uint(root)
}

func parseQuantiles(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, grferrors.Wrapf(err, "parsing quantile level %q", p)
		}
		out[i] = v
	}
	return out, nil
}
