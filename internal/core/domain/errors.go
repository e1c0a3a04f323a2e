package domain

import "fmt"

// ValidationError rejects a specification. Rule is a stable identifier of
// the violated check and Reason is meant for humans.
type ValidationError struct {
	Rule   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid campaign specification (%s): %s", e.Rule, e.Reason)
}

// PlatformError is a failure reported by the advertising platform or by the
// transport in front of it.
type PlatformError struct {
	HTTPStatus int
	Code       int
	Subcode    int
	Type       string
	Message    string
	TraceID    string
}

func (e *PlatformError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("platform error %d: %s", e.Code, e.Message)
	}
	return "platform error: " + e.Message
}
