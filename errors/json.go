package errors

import (
	"encoding/json"
)

// ErrorResponse is a flat, serializable view of an error, suitable for
// reporting an operation failure to a log sink or an API client.
//
// The wrapped cause chain is excluded: raw backend errors can leak host
// details that callers did not ask for.
type ErrorResponse struct {
	// Code is the taxonomy code.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification is RETRYABLE or PERMANENT.
	Classification string `json:"classification"`

	// Context carries operation metadata such as the paths involved.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse. Returns nil if err is nil.
//
// Non-platform errors are reported as CodeUnknown with their Error() text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
	}
}

// MarshalJSON renders the error as an ErrorResponse.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		// Context values are caller-supplied and may not be serializable.
		return nil, Wrap(err, CodeInvalidArgument, "failed to marshal error response")
	}
	return data, nil
}
