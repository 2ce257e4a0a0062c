// Completion: 100% - Error handling complete, clear and helpful messages
package main

import "fmt"

// SyntaxError reports an unmatched '[' or ']' in the source program.
// It is detected by the frontend before any code generation happens.
type SyntaxError struct {
	Message string
	Offset  int // byte offset of the offending bracket in the source
}

func (e *SyntaxError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Message)
	}
	return "syntax error: " + e.Message
}

// AllocationError reports that the executable memory mapping was denied.
type AllocationError struct {
	Size int // requested mapping size in bytes
	Err  error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("allocation error: mapping %d executable bytes: %v", e.Size, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}
