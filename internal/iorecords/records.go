// Package iorecords reads batches of profile records from JSON and YAML
// files.
package iorecords

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnprofiles/pkg/ent/profile"
	"gopkg.in/yaml.v3"
)

// Format is a file format of a batch.
type Format int

const (
	UnknownFormat Format = iota
	JSON
	YAML
)

// FormatFromPath detects the format of a batch from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return UnknownFormat
	}
}

// Read loads and normalizes records of a batch file.
func Read(path string) ([]profile.ImportRecord, error) {
	f := FormatFromPath(path)
	if f == UnknownFormat {
		return nil, FormatError(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadError(path, err)
	}

	res, err := Decode(data, f)
	if err != nil {
		return nil, DecodeError(path, err)
	}
	if len(res) == 0 {
		return nil, EmptyError(path)
	}
	return res, nil
}

// Decode converts JSON or YAML list of records to normalized records.
func Decode(data []byte, f Format) ([]profile.ImportRecord, error) {
	var res []profile.ImportRecord
	var err error
	switch f {
	case JSON:
		err = gnfmt.GNjson{}.Decode(data, &res)
	case YAML:
		err = yaml.Unmarshal(data, &res)
	default:
		return nil, FormatError("")
	}
	if err != nil {
		return nil, err
	}

	for i := range res {
		res[i].Normalize()
	}
	return res, nil
}

// Names returns scientific names of records, blank names are skipped.
func Names(recs []profile.ImportRecord) []string {
	res := make([]string, 0, len(recs))
	for _, v := range recs {
		if v.ScientificName != "" {
			res = append(res, v.ScientificName)
		}
	}
	return res
}
