package server

import "fmt"

// QueryError indicates a malformed query parameter
type QueryError struct {
	Param string
	Value string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q", e.Param, e.Value)
}
