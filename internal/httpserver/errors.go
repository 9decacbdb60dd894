package httpserver

// Error is an error that occurs in the HTTP server layer
type Error struct {
	Message string
}

// Error returns the error message
func (e *Error) Error() string {
	return e.Message
}
