// File: asciimath.go
// Title: Conversion Engine
// Description: Library entry point tying the lexer, the parser and the
//              MathML renderer together. The engine enforces an input
//              limit, honours context cancellation between expressions,
//              logs every conversion and returns structured errors.
// Author: mathemascii authors
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-07 v0.1.0: Initial engine
// - 2026-10-12 v0.1.0: Context cancellation and input limit

package asciimath

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/mathemascii/mathemascii/foundation/asciimath/ast"
	"github.com/mathemascii/mathemascii/foundation/asciimath/diag"
	"github.com/mathemascii/mathemascii/foundation/asciimath/lexer"
	"github.com/mathemascii/mathemascii/foundation/asciimath/mathml"
	"github.com/mathemascii/mathemascii/foundation/asciimath/parser"
	mmerror "github.com/mathemascii/mathemascii/foundation/core/error"
	mmlog "github.com/mathemascii/mathemascii/foundation/core/log"
)

// DefaultMaxInputLength is the input limit in symbols used when Options
// leaves it at zero.
const DefaultMaxInputLength = 16 * 1024

// Options configures an Engine
type Options struct {
	Logger         *mmlog.Logger
	MaxInputLength int // symbols; negative disables the limit
	Display        mathml.Display
	Indent         string
}

// Result is the outcome of one conversion
type Result struct {
	Input       string
	Expressions []*ast.Expression
	MathML      string
	Warnings    []diag.Warning
	Duration    time.Duration
}

// Engine converts AsciiMath input. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	opts   Options
	logger *mmlog.Logger
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}
	logger := opts.Logger
	if logger == nil {
		logger = mmlog.Discard()
	}
	return &Engine{opts: opts, logger: logger.WithName("asciimath")}
}

// Options returns the engine configuration
func (e *Engine) Options() Options { return e.opts }

// WithDisplay returns a copy rendering with a different display mode
func (e *Engine) WithDisplay(d mathml.Display) *Engine {
	clone := *e
	clone.opts.Display = d
	return &clone
}

// WithIndent returns a copy rendering indented output
func (e *Engine) WithIndent(indent string) *Engine {
	clone := *e
	clone.opts.Indent = indent
	return &clone
}

// WithLogger returns a copy logging to logger
func (e *Engine) WithLogger(logger *mmlog.Logger) *Engine {
	clone := *e
	clone.logger = logger.WithName("asciimath")
	return &clone
}

func (e *Engine) check(ctx context.Context, op, input string) error {
	if err := ctx.Err(); err != nil {
		return canceled(op, err)
	}
	if limit := e.opts.MaxInputLength; limit > 0 {
		if n := utf8.RuneCountInString(input); n > limit {
			return mmerror.Newf("input has %d symbols, the limit is %d", n, limit).
				WithCode(mmerror.CodeInputTooLong).
				WithOperation(op).
				WithDetail("length", n).
				WithDetail("limit", limit)
		}
	}
	return nil
}

func canceled(op string, err error) *mmerror.Error {
	code := mmerror.CodeCanceled
	if errors.Is(err, context.DeadlineExceeded) {
		code = mmerror.CodeTimeout
	}
	return mmerror.Wrap(err, op+" interrupted").WithCode(code).WithOperation(op)
}

// Tokenize splits input into tokens
func (e *Engine) Tokenize(ctx context.Context, input string) ([]lexer.Token, []diag.Warning, error) {
	if err := e.check(ctx, "tokenize", input); err != nil {
		return nil, nil, err
	}

	lex := lexer.New(input)
	var tokens []lexer.Token
	for {
		tok, ok := lex.Next()
		if !ok {
			break
		}
		e.logger.Trace("token", mmlog.Fields{"token": tok.String(), "span": tok.Span.String()})
		tokens = append(tokens, tok)
		if len(tokens)%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, canceled("tokenize", err)
			}
		}
	}
	return tokens, lex.Warnings(), nil
}

// Parse builds the expression trees of input. The MathML field of the
// result is empty.
func (e *Engine) Parse(ctx context.Context, input string) (*Result, error) {
	start := time.Now()
	if err := e.check(ctx, "parse", input); err != nil {
		return nil, err
	}

	p := parser.New(input)
	var exprs []*ast.Expression
	for {
		expr, ok := p.Next()
		if !ok {
			break
		}
		exprs = append(exprs, expr)
		if err := ctx.Err(); err != nil {
			return nil, canceled("parse", err)
		}
	}

	res := &Result{
		Input:       input,
		Expressions: exprs,
		Warnings:    p.Warnings(),
		Duration:    time.Since(start),
	}
	for _, w := range res.Warnings {
		e.logger.Debug("recovered from malformed input", mmlog.Fields{
			"code": string(w.Code),
			"span": w.Span.String(),
		})
	}
	return res, nil
}

// Render parses input and renders it as a MathML math element
func (e *Engine) Render(ctx context.Context, input string) (*Result, error) {
	timer := e.logger.StartTimer("render").WithField("input_symbols", utf8.RuneCountInString(input))

	res, err := e.Parse(ctx, input)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	r := mathml.New(mathml.Options{Display: e.opts.Display, Indent: e.opts.Indent})
	res.MathML = r.Render(res.Expressions)
	res.Duration = timer.
		WithField("expressions", len(res.Expressions)).
		WithField("warnings", len(res.Warnings)).
		Stop()
	return res, nil
}

// Parse returns the expressions of input
func Parse(input string) []*ast.Expression {
	return parser.Parse(input)
}

// RenderMathML renders input as inline or block MathML
func RenderMathML(input string, block bool) string {
	display := mathml.DisplayInline
	if block {
		display = mathml.DisplayBlock
	}
	return mathml.New(mathml.Options{Display: display}).Render(parser.Parse(input))
}
