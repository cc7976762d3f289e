// Package asciimath converts AsciiMath notation to MathML.
//
// Package: asciimath
// Title: AsciiMath Conversion
// Description: Facade over the scanner, keyword tables, lexer, parser and
//              MathML renderer. Outer surfaces (CLI, HTTP, gRPC, preview)
//              go through Engine so that limits, cancellation, logging and
//              error codes behave the same everywhere.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation
//
// Pipeline:
//
//	scanner   text to Unicode symbols with offsets
//	keywords  per-category keyword tables
//	lexer     longest-match tokens
//	parser    expression trees with spans
//	mathml    presentation MathML
//
// Usage:
//
//	engine := asciimath.NewEngine(asciimath.Options{Display: mathml.DisplayBlock})
//	res, err := engine.Render(ctx, "sum_(i=1)^n i^3=((n(n+1))/2)^2")
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.MathML)
//	for _, w := range res.Warnings {
//		fmt.Println(diag.Format(res.Input, w, false))
//	}
//
// Malformed input never fails a conversion; it produces a partial tree and
// warnings. Errors are reserved for oversized input and cancellation.
package asciimath
