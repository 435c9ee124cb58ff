package profile

import (
	"fmt"
	"strings"
)

// Outcomes of importing a record.
const (
	AlreadyExists    = "Already exists"
	Success          = "Success"
	SuccessUnmatched = "Success (Unmatched name)"

	failedPrefix = "Failed: "
)

// MissingNameMsg explains the failure of a record without a scientific
// name.
const MissingNameMsg = "missing scientific name"

// Failed creates an outcome for a record that could not be imported.
func Failed(reason string) string {
	return failedPrefix + reason
}

// IsFailure returns true if the outcome describes a failed import.
func IsFailure(outcome string) bool {
	return strings.HasPrefix(outcome, failedPrefix)
}

// RowKey creates a result key for a record that has no usable scientific
// name. Rows are counted from 1.
func RowKey(idx int) string {
	return fmt.Sprintf("Row %d", idx+1)
}

// DuplicateKey creates a result key for a record that repeats the
// scientific name of an earlier record of the same batch.
func DuplicateKey(name string, idx int) string {
	return fmt.Sprintf("%s (%s)", name, RowKey(idx))
}
