package results

import "fmt"

// ParseError reports an upload that could not be read as a results table.
// It is scoped to one file and never stops the rest of a batch.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
