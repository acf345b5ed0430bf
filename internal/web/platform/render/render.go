// Package render bridges gomponents nodes into templ components so page
// plumbing can stay renderer-agnostic.
package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component wraps a gomponents node as a templ component.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// String renders a node to markup. Render errors yield an empty string.
func String(node g.Node) string {
	if node == nil {
		return ""
	}
	var builder strings.Builder
	if err := node.Render(&builder); err != nil {
		return ""
	}
	return builder.String()
}
