package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
)

// OpusCreateError is returned when a new opus cannot be saved.
func OpusCreateError(title string, err error) error {
	msg := `Cannot create opus <em>%s</em>

<em>How to fix:</em>
  1. Make sure the schema exists: gnprofiles create
  2. Update the schema if it is old: gnprofiles migrate`

	return &gn.Error{
		Code: errcode.StoreOpusCreateError,
		Msg:  msg,
		Vars: []any{title},
		Err:  fmt.Errorf("create opus %q: %w", title, err),
	}
}

// TermError is returned when a vocabulary term cannot be read or
// saved.
func TermError(vocabID, label string, err error) error {
	return &gn.Error{
		Code: errcode.StoreTermError,
		Msg:  "Cannot access term <em>%s</em> of vocabulary %s",
		Vars: []any{label, vocabID},
		Err:  fmt.Errorf("term %q of vocabulary %s: %w", label, vocabID, err),
	}
}

// ContributorError is returned when a contributor cannot be read or
// saved.
func ContributorError(name string, err error) error {
	return &gn.Error{
		Code: errcode.StoreContributorError,
		Msg:  "Cannot access contributor <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("contributor %q: %w", name, err),
	}
}

// ProfileError is returned when a profile cannot be read or saved.
func ProfileError(name string, err error) error {
	return &gn.Error{
		Code: errcode.StoreProfileError,
		Msg:  "Cannot access profile <em>%s</em>",
		Vars: []any{name},
		Err:  fmt.Errorf("profile %q: %w", name, err),
	}
}

// AnalyzeError is returned when statistics of a table cannot be
// updated.
func AnalyzeError(table string, err error) error {
	return &gn.Error{
		Code: errcode.StoreAnalyzeError,
		Msg:  "Cannot update statistics of <em>%s</em> table",
		Vars: []any{table},
		Err:  fmt.Errorf("analyze %s: %w", table, err),
	}
}
