package wikia

import (
	"errors"
	"fmt"
)

// WikiRequiredError is returned by operations that only exist on a single
// wiki when the client was constructed without one. It is decided before
// any request is sent.
type WikiRequiredError struct {
	// Op is the operation that was attempted, e.g. "Search".
	Op string
}

func (e *WikiRequiredError) Error() string {
	return e.Op + " requires a client scoped to a wiki; construct it with WithWiki"
}

// IsWikiRequired reports whether err is a WikiRequiredError.
func IsWikiRequired(err error) bool {
	var e *WikiRequiredError
	return errors.As(err, &e)
}

// StatusError is returned when the API answers with a non-2xx status.
// Body holds a snippet of the response for debugging; it is not
// interpreted further.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var e *StatusError
	return errors.As(err, &e) && e.StatusCode == code
}

// requireWiki guards the single-wiki operations.
func (c *Client) requireWiki(op string) error {
	if c.wiki == "" {
		return &WikiRequiredError{Op: op}
	}
	return nil
}
