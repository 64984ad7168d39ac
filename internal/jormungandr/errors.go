package jormungandr

import (
	"fmt"
	"net/http"
)

// UnavailableError reports that the node REST API could not serve a request.
type UnavailableError struct {
	Op         string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *UnavailableError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("web API unavailable: %s %s: HTTP %d %s: %s",
			e.Op, e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
	}
	return fmt.Sprintf("web API unavailable: %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// DecodeError reports a node response that does not have the expected shape.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
