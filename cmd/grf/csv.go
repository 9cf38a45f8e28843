package main

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pbanos/grf/grferrors"
)

// readCSVMatrix reads a CSV file of float64 values (no header row) into
// row-major float slices. CSV parsing itself sits outside the core the
// way the external-collaborator boundary names it; this helper is
// scaffolding for the CLI only.
func readCSVMatrix(r io.Reader) ([][]float64, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, grferrors.Wrapf(err, "reading csv")
	}
	rows := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, grferrors.Wrapf(err, "parsing csv cell at row %d, column %d", i, j)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return rows, nil
}

func writeCSVMatrix(w io.Writer, rows [][]float64) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	for _, row := range rows {
		record := make([]string, len(row))
		for i, v := range row {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return grferrors.Wrapf(err, "writing csv row")
		}
	}
	return nil
}
