package regmap

import "fmt"

// AccessError reports an access that violates a register's Access type.
type AccessError struct {
	// Offset is the byte offset of the access
	Offset uint32

	// Op is "read" or "write"
	Op string

	// Reason describes the violation
	Reason string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("register %s at 0x%04X: %s", e.Op, e.Offset, e.Reason)
}

// IsAccessError returns true if the error is an AccessError.
func IsAccessError(err error) bool {
	_, ok := err.(*AccessError)
	return ok
}
