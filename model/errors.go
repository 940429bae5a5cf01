package model

import "fmt"

// FormatError reports a generator expression that matches none of the
// accepted grammars. Recoverable: callers should prompt for a correction
// and may keep their last valid value.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return e.Msg }

// DomainError reports a numeric parameter outside its required range.
type DomainError struct {
	Param string
	Msg   string
}

func (e *DomainError) Error() string { return fmt.Sprintf("%v %v", e.Param, e.Msg) }
