package models

// Status values used in [StatusResponse].
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// StatusResponse is the body shape of the register and login endpoints.
//
// Both endpoints always respond with HTTP 200 and report the outcome in the
// Status field; Data carries either a human-readable message or, on a
// successful login, the signed token. Mobile clients depend on this
// contract, so it is preserved verbatim.
type StatusResponse struct {
	// Status is either [StatusOK] or [StatusError].
	Status string `json:"status"`

	// Data is the outcome payload: a message string or a signed token.
	Data string `json:"data"`
}

// OK builds a success response with the given payload.
func OK(data string) StatusResponse {
	return StatusResponse{Status: StatusOK, Data: data}
}

// Error builds a failure response with the given message.
func Error(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Data: message}
}

// MessageResponse is the body shape of catalog and user-listing failures.
// Unlike [StatusResponse] it carries the text under "message", which is what
// those endpoints have always returned.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorMessage builds a failure response in the [MessageResponse] shape.
func ErrorMessage(message string) MessageResponse {
	return MessageResponse{Status: StatusError, Message: message}
}
