package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	grfdata "github.com/pbanos/grf/data"
	"github.com/pbanos/grf/forest"
	"github.com/pbanos/grf/grferrors"
	"github.com/pbanos/grf/prediction"
)

type predictCmdConfig struct {
	*rootCmdConfig
	model         string
	input         string
	output        string
	kind          string
	oob           bool
	trainingInput string
	quantiles     string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	pcc := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict with a trained generalized random forest",
		Long:  `Load a gob-encoded model and predict against a CSV of feature rows, writing point estimates (and variances, if the model carries CI groups) to CSV.`,
		Run: func(cmd *cobra.Command, args []string) {
			if err := pcc.run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(pcc.model), "model", "m", "", "path to the gob-encoded trained model (required)")
	cmd.PersistentFlags().StringVarP(&(pcc.input), "input", "i", "", "path to a CSV file of feature rows to predict against (required unless --oob)")
	cmd.PersistentFlags().StringVarP(&(pcc.output), "output", "o", "", "path to write CSV predictions to (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(pcc.kind), "kind", "k", "regression", "forest kind the model was trained as: regression, quantile, or instrumental")
	cmd.PersistentFlags().BoolVar(&(pcc.oob), "oob", false, "predict out-of-bag against --training-input's rows instead of --input, excluding each row from trees that trained on it")
	cmd.PersistentFlags().StringVar(&(pcc.trainingInput), "training-input", "", "path to the feature-column CSV the model was trained on (required with --oob; the saved model doesn't retain it)")
	cmd.PersistentFlags().StringVar(&(pcc.quantiles), "quantiles", "0.1,0.5,0.9", "comma-separated quantile levels (quantile forests only, must match training)")
	return cmd
}

func (pcc *predictCmdConfig) run() error {
	if pcc.model == "" {
		return grferrors.New("required model flag was not set")
	}
	if pcc.oob {
		if pcc.trainingInput == "" {
			return grferrors.New("required training-input flag was not set (--oob predicts against the training rows, which the saved model doesn't retain)")
		}
		if pcc.kind == "quantile" {
			return grferrors.New("--oob is not supported for quantile forests, which predict through leaf-neighbor weights rather than per-tree OOB masks")
		}
	} else if pcc.input == "" {
		return grferrors.New("required input flag was not set")
	}

	modelBytes, err := ioutil.ReadFile(pcc.model)
	if err != nil {
		return grferrors.Wrapf(err, "reading model file %s", pcc.model)
	}
	fst, err := forest.Load(bytes.NewReader(modelBytes))
	if err != nil {
		return err
	}

	inputPath := pcc.input
	if pcc.oob {
		inputPath = pcc.trainingInput
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return grferrors.Wrapf(err, "opening input file %s", inputPath)
	}
	defer f.Close()
	queryRows, err := readCSVMatrix(f)
	if err != nil {
		return err
	}

	var out [][]float64
	switch pcc.kind {
	case "regression":
		out, err = pcc.predictOptimized(fst, queryRows, prediction.RegressionStrategy{CIGroupSize: fst.CIGroupSize})
	case "instrumental":
		out, err = pcc.predictOptimized(fst, queryRows, prediction.InstrumentalStrategy{CIGroupSize: fst.CIGroupSize})
	case "quantile":
		quantiles, qerr := parseQuantiles(pcc.quantiles)
		if qerr != nil {
			return qerr
		}
		out, err = pcc.predictDefault(fst, queryRows, prediction.QuantileStrategy{Quantiles: quantiles})
	default:
		return grferrors.Errorf("unknown forest kind %q", pcc.kind)
	}
	if err != nil {
		return err
	}

	var w *os.File
	if pcc.output == "" {
		w = os.Stdout
	} else {
		w, err = os.Create(pcc.output)
		if err != nil {
			return grferrors.Wrapf(err, "creating output file %s", pcc.output)
		}
		defer w.Close()
	}
	return writeCSVMatrix(w, out)
}

func (pcc *predictCmdConfig) predictOptimized(fst *forest.Forest, rows [][]float64, strategy prediction.OptimizedStrategy) ([][]float64, error) {
	d, err := grfdata.New(rows)
	if err != nil {
		return nil, err
	}
	predictor := forest.Predictor{Forest: fst, Strategy: strategy}
	if pcc.oob {
		preds, err := predictor.PredictOOB(d)
		if err != nil {
			return nil, err
		}
		return predictionsToRows(preds), nil
	}
	preds, err := predictor.Predict(d)
	if err != nil {
		return nil, err
	}
	return predictionsToRows(preds), nil
}

func (pcc *predictCmdConfig) predictDefault(fst *forest.Forest, rows [][]float64, strategy prediction.DefaultStrategy) ([][]float64, error) {
	d, err := grfdata.New(rows)
	if err != nil {
		return nil, err
	}
	predictor := forest.Predictor{Forest: fst}
	preds := predictor.PredictDefault(d, fst.Observations, strategy)
	return predictionsToRows(preds), nil
}

func predictionsToRows(preds []prediction.Prediction) [][]float64 {
	out := make([][]float64, len(preds))
	for i, p := range preds {
		row := append([]float64{}, p.Point...)
		row = append(row, p.Variance...)
		out[i] = row
	}
	return out
}
