// File: codes.go
// Title: Error Code Definitions
// Description: Error codes shared by the conversion engine, the storage
//              layer and the network services. Codes map onto HTTP and
//              gRPC status codes for API responses.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-02 v0.1.0: Initial code set
// - 2026-10-11 v0.1.0: gRPC status mapping

package error

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"
	CodeTimeout  Code = "TIMEOUT"
	CodeCanceled Code = "CANCELED"

	// Input and conversion
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeInputTooLong  Code = "INPUT_TOO_LONG"
	CodeRenderFailed  Code = "RENDER_FAILED"
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Storage
	CodeStorage          Code = "STORAGE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"

	// Services
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeRateLimited        Code = "RATE_LIMITED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeTimeout, CodeCanceled,
		CodeInvalidInput, CodeInputTooLong, CodeRenderFailed, CodeInvalidFormat,
		CodeStorage, CodeConnectionFailed,
		CodeServiceUnavailable, CodeRateLimited,
		CodeConfigError, CodeInvalidConfig:
		return true
	}
	return false
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInputTooLong, CodeRenderFailed, CodeInvalidFormat:
		return "conversion"
	case CodeStorage, CodeConnectionFailed:
		return "storage"
	case CodeServiceUnavailable, CodeRateLimited, CodeTimeout, CodeCanceled:
		return "service"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// HTTPStatus returns the HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput, CodeInvalidFormat:
		return http.StatusBadRequest
	case CodeInputTooLong:
		return http.StatusRequestEntityTooLarge
	case CodeRenderFailed:
		return http.StatusUnprocessableEntity
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeCanceled:
		return 499
	case CodeServiceUnavailable, CodeStorage, CodeConnectionFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// GRPCCode returns the gRPC status code for this error code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNotFound:
		return codes.NotFound
	case CodeInvalidInput, CodeInvalidFormat, CodeRenderFailed:
		return codes.InvalidArgument
	case CodeInputTooLong, CodeRateLimited:
		return codes.ResourceExhausted
	case CodeTimeout:
		return codes.DeadlineExceeded
	case CodeCanceled:
		return codes.Canceled
	case CodeServiceUnavailable, CodeStorage, CodeConnectionFailed:
		return codes.Unavailable
	case CodeConfigError, CodeInvalidConfig:
		return codes.FailedPrecondition
	case CodeUnknown:
		return codes.Unknown
	default:
		return codes.Internal
	}
}
