package dto

import "time"

// Machine-readable error codes surfaced in APIResponse. Validation and
// domain failures are distinct categories so callers can tell a malformed
// request from a legal request that a business rule rejected.
const (
	CodeAccountNotFound = "Account.NotFound"
	CodeValidation      = "Validation.Error"
	CodeDomain          = "Domain.Error"
	CodeConflict        = "Conflict.Error"
	CodeInternal        = "Internal.Error"
)

// APIResponse is the uniform success/failure envelope every endpoint
// returns. A success never carries an error code and a failure never
// carries data. TraceID correlates the response with the request logs.
type APIResponse struct {
	IsSuccess    bool      `json:"isSuccess"`
	Data         any       `json:"data,omitempty"`
	ErrorCode    string    `json:"errorCode,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	TraceID      string    `json:"traceId"`
	Timestamp    time.Time `json:"timestamp"`
}

// SuccessResponse builds the success branch of the envelope. Pass nil data
// for operations that return no value.
func SuccessResponse(data any, traceID string) APIResponse {
	return APIResponse{
		IsSuccess: true,
		Data:      data,
		TraceID:   traceID,
		Timestamp: time.Now().UTC(),
	}
}

// FailureResponse builds the failure branch of the envelope.
func FailureResponse(code, message, traceID string) APIResponse {
	return APIResponse{
		IsSuccess:    false,
		ErrorCode:    code,
		ErrorMessage: message,
		TraceID:      traceID,
		Timestamp:    time.Now().UTC(),
	}
}
