package ioverifier

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnprofiles/pkg/errcode"
)

// RequestError is returned when GNverifier cannot be reached.
func RequestError(url string, err error) error {
	msg := `Cannot reach name verification service at <em>%s</em>

<em>How to fix:</em>
  1. Check the network connection
  2. Check verifier.url in ~/.config/gnprofiles/config.yaml`

	return &gn.Error{
		Code: errcode.VerifierRequestError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("verifier request to %s: %w", url, err),
	}
}

// ResponseError is returned when GNverifier answers with an error status
// or a body that cannot be decoded.
func ResponseError(url string, status int, err error) error {
	if err == nil {
		err = fmt.Errorf("unexpected status %d", status)
	}
	return &gn.Error{
		Code: errcode.VerifierResponseError,
		Msg:  "Name verification service at <em>%s</em> returned status %d",
		Vars: []any{url, status},
		Err:  fmt.Errorf("verifier response from %s: %w", url, err),
	}
}
