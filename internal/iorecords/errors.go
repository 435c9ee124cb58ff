package iorecords

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
)

// ReadError is returned when a batch file cannot be read.
func ReadError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("read %s: %w", path, err),
	}
}

// FormatError is returned when the format of a batch file is not
// supported.
func FormatError(path string) error {
	msg := `Unknown format of <em>%s</em>

Batch files must have .json, .yaml or .yml extension.`

	return &gn.Error{
		Code: errcode.RecordsFormatError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("unknown batch format: %s", path),
	}
}

// DecodeError is returned when a batch file is not a list of profile
// records.
func DecodeError(path string, err error) error {
	msg := `Cannot decode profile records from <em>%s</em>

The file must contain a list of records with scientificName,
attributes, links, bhl and authorship fields.`

	return &gn.Error{
		Code: errcode.RecordsDecodeError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("decode %s: %w", path, err),
	}
}

// EmptyError is returned when a batch file has no records.
func EmptyError(path string) error {
	return &gn.Error{
		Code: errcode.RecordsEmptyError,
		Msg:  "File <em>%s</em> has no profile records",
		Vars: []any{path},
		Err:  fmt.Errorf("no records in %s", path),
	}
}
