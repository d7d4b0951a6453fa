package dto

// Response is the envelope shared by every JSON reply. Domain-level failures
// set Success=false with a human-readable Message and still return HTTP 200;
// transport-level failures (bad JSON, missing auth) use HTTP status codes.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK builds a success envelope with an optional message.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail builds a failure envelope carrying the given message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
