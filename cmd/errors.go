package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
)

// ConfigReadError is returned when config.yaml cannot be read or parsed.
func ConfigReadError(path string, err error) error {
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  "Cannot read configuration from <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read config %s: %w", path, err),
	}
}

// OutputFormatError is returned for an unsupported output format.
func OutputFormatError(format string) error {
	return &gn.Error{
		Code: errcode.OutputFormatError,
		Msg:  "Unknown output format <em>%s</em>, use json, csv or tsv",
		Vars: []any{format},
		Err:  fmt.Errorf("unknown output format %q", format),
	}
}

// OpusMissingError is returned when opus ID or title is not given.
func OpusMissingError(flag string) error {
	return &gn.Error{
		Code: errcode.OpusMissingError,
		Msg:  "The <em>--%s</em> flag is required",
		Vars: []any{flag},
		Err:  fmt.Errorf("missing --%s flag", flag),
	}
}
