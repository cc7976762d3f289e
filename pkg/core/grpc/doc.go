// ============================================================================
// mathemascii - AsciiMath to MathML
// ============================================================================
//
// Package:     grpc
// Description: gRPC server and client plumbing: recovery, request IDs,
//              logging, structured error mapping and the health service
// Author:      mathemascii authors
// Created:     2026-10-09
// License:     MIT
// ============================================================================

package grpc
