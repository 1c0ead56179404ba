package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/kundali/pkg/chart"
	"github.com/matzehuels/kundali/pkg/errors"
)

// WriteJSON encodes rep as indented JSON and writes it to w.
func WriteJSON(rep *chart.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode report")
	}
	return nil
}

// ExportJSON writes rep to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(rep *chart.Report, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(rep, f)
}

// ReadJSON decodes a report written by [WriteJSON].
func ReadJSON(r io.Reader) (*chart.Report, error) {
	var rep chart.Report
	if err := json.NewDecoder(r).Decode(&rep); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode report")
	}
	return &rep, nil
}
