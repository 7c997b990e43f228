// Package format renders query results as plain text, HTML fragments or JSON
package format

//go:generate templ generate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"twd-lookup/internal/query"
)

// View is a result that can be rendered in every output mode
type View interface {
	// Text returns the human readable form without a trailing newline
	Text() string
	// HTML returns an HTML fragment suitable for chat messages
	HTML() templ.Component
	// Data returns the value serialized in JSON mode
	Data() any
}

// Render writes v to w in the requested mode, followed by a newline
func Render(ctx context.Context, w io.Writer, mode query.OutputMode, v View) error {
	switch mode {
	case query.ModeJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v.Data()); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	case query.ModeHTML:
		if err := v.HTML().Render(ctx, w); err != nil {
			return fmt.Errorf("failed to render html: %w", err)
		}
		_, err := io.WriteString(w, "\n")
		return err
	default:
		_, err := io.WriteString(w, v.Text()+"\n")
		return err
	}
}

// RenderString renders v into a string
func RenderString(ctx context.Context, mode query.OutputMode, v View) (string, error) {
	var sb strings.Builder
	if err := Render(ctx, &sb, mode, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}
