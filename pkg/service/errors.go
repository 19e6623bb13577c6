package service

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrMissingLocation indicates a redirect status whose response carries no
// Location header to follow.
var ErrMissingLocation = errors.New("redirect response without a Location header")

// RedirectLimitError is returned when the hop budget runs out while the last
// response still asks for a redirect. Response is that last redirect
// response; its body is left open and closing it is up to the caller.
//
// The net/http client wraps transport errors in *url.Error, so callers going
// through the verb methods should unwrap with errors.As.
type RedirectLimitError struct {
	Limit    int
	Response *http.Response
}

func (e *RedirectLimitError) Error() string {
	return fmt.Sprintf("stopped after %d redirects, last redirect to %q",
		e.Limit, e.Response.Header.Get("Location"))
}
