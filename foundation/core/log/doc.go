// Package log provides structured logging for mathemascii.
//
// Package: log
// Title: Structured Logging
// Description: Levelled, structured logging with JSON, text and console
//              formats. Loggers are immutable; the With* methods derive
//              tagged copies that share one synchronized output. Structured
//              errors are logged with their code and details at a level
//              matching their severity.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation
//
// Usage:
//
//	import mmlog "github.com/mathemascii/mathemascii/foundation/core/log"
//
//	logger := mmlog.NewWithConfig(mmlog.Config{
//		Level:  mmlog.LevelDebug,
//		Format: mmlog.FormatConsole,
//		Name:   "serve",
//	})
//
//	logger.Info("render finished", mmlog.Fields{"expressions": 3})
//
//	timer := logger.StartTimer("render")
//	// ... convert input
//	timer.Stop()
package log
