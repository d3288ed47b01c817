// Package report renders battery reports as plain text, JSON, Markdown or HTML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gorandtest/domain/randomness"
)

// Format selects a report rendering
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ErrUnknownFormat is returned for an unsupported format name
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat resolves a format name. An empty name selects text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Render writes r to w in the requested format
func Render(w io.Writer, r *randomness.Report, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		_, err := w.Write(HTML(r))
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
