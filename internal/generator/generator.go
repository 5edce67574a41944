// Package generator adapts the external response-generation provider behind a
// single text-to-text call.
package generator

import "context"

// Generator produces a reply for a user message. Implementations may be slow;
// callers bound the call through the context. The engine invokes Generate at
// most once per logical request.
type Generator interface {
	Generate(ctx context.Context, content string) (string, error)
}
