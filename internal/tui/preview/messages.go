// ============================================================================
// mathemascii - AsciiMath to MathML
// ============================================================================
//
// Package:     preview
// Description: Message types for async operations in the preview
// Author:      mathemascii authors
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package preview

import "github.com/mathemascii/mathemascii/internal/render/service"

// renderTickMsg fires after the input settled; stale ticks are ignored
type renderTickMsg struct {
	seq int
}

// renderedMsg carries a finished conversion
type renderedMsg struct {
	seq    int
	render *service.RenderResponse
	tokens *service.TokensResponse
	err    error
}

// copiedMsg reports the clipboard result
type copiedMsg struct {
	err error
}
