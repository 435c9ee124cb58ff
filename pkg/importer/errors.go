package importer

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
)

// OpusNotFoundError is returned when the import targets an opus that does
// not exist. No records are processed.
func OpusNotFoundError(opusID string) error {
	msg := `Opus <em>%s</em> does not exist

<em>How to fix:</em>
  1. Create the opus: gnprofiles opus --title "My profiles"
  2. Use the ID it prints with the --opus flag`

	return &gn.Error{
		Code: errcode.ImportOpusNotFoundError,
		Msg:  msg,
		Vars: []any{opusID},
		Err:  fmt.Errorf("opus %s not found", opusID),
	}
}

// OpusLookupError is returned when the opus of the import cannot be read
// from the storage.
func OpusLookupError(opusID string, err error) error {
	msg := "Cannot read opus <em>%s</em> from the database"

	return &gn.Error{
		Code: errcode.ImportOpusLookupError,
		Msg:  msg,
		Vars: []any{opusID},
		Err:  fmt.Errorf("find opus %s: %w", opusID, err),
	}
}

// CancelledError is returned when the context of the import is cancelled
// before all records are processed.
func CancelledError(stage string, err error) error {
	msg := "Import was cancelled during <em>%s</em>"

	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Vars: []any{stage},
		Err:  fmt.Errorf("import cancelled during %s: %w", stage, err),
	}
}

// WorkerPanicError describes a panic recovered inside an import worker.
func WorkerPanicError(name string, v any) error {
	msg := "Import of <em>%s</em> stopped unexpectedly"

	return &gn.Error{
		Code: errcode.ImportWorkerError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("unexpected error: %v", v),
	}
}
