package iocache

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
)

// OpenError is returned when the cache database cannot be opened or
// initialized.
func OpenError(path string, err error) error {
	msg := `Cannot open name-match cache <em>%s</em>

<em>How to fix:</em>
  1. Check permissions of the cache directory
  2. Remove the file, it is recreated on the next run`

	return &gn.Error{
		Code: errcode.CacheOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("open cache %s: %w", path, err),
	}
}

// QueryError is returned when a cache lookup or update fails.
func QueryError(key string, err error) error {
	return &gn.Error{
		Code: errcode.CacheQueryError,
		Msg:  "Name-match cache failed for <em>%s</em>",
		Vars: []any{key},
		Err:  fmt.Errorf("cache query %q: %w", key, err),
	}
}
