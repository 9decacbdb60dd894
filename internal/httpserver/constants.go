package httpserver

const (
	// BasePath prefixes every user route
	BasePath = "/api/v1"
	// CorrelationIDHeader carries the request correlation id in both directions
	CorrelationIDHeader = "X-Correlation-ID"
	// GenderQueryParameter filters the user listing
	GenderQueryParameter = "gender"
	// EmailPathParameter identifies a user in the path
	EmailPathParameter = "email"
)

const (
	errorCodeInvalidRequest = "invalid_request"
	errorCodeNotFound       = "not_found"
	errorCodeInternal       = "internal_error"
)
