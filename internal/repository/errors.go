package repository

// Error is the error type for the repository layer
type Error struct {
	Message string
}

// Error returns the error message
func (e *Error) Error() string {
	return e.Message
}

// ErrNilUser is returned when a nil record is handed to a write operation
var ErrNilUser = &Error{Message: "User is nil"}
