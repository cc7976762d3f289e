// Package error provides structured errors for mathemascii.
//
// Package: error
// Title: Structured Error Handling
// Description: Errors with codes, severities, details, operation names and
//              request IDs. Codes map to HTTP and gRPC statuses so the
//              network services can answer consistently, and errors
//              serialize to JSON for the structured logger.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
//
// Usage:
//
//	import mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
//
//	err := mmerror.New("input exceeds the configured limit").
//		WithCode(mmerror.CodeInputTooLong).
//		WithDetail("limit", 4096).
//		WithOperation("render")
//
//	wrapped := mmerror.Wrap(err, "preview request failed")
//	if mmerror.HasCode(wrapped, mmerror.CodeInputTooLong) {
//		status := wrapped.HTTPStatus() // 413
//	}
package error
