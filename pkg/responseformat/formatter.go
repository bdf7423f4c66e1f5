package responseformat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format names an output encoding
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgPack Format = "msgpack"
)

// ParseFormat parses a format name. An empty name selects text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatMsgPack:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q. Use 'text', 'json' or 'msgpack'", s)
	}
}

// TextWriter is implemented by values with a human-readable rendering
type TextWriter interface {
	WriteText(w io.Writer) error
}

// Formatter encodes reports in text, JSON or MessagePack format
type Formatter struct {
	format Format
}

// NewFormatter creates a new formatter for the given format
func NewFormatter(format Format) *Formatter {
	return &Formatter{format: format}
}

// Write encodes data to w. Text output uses data's WriteText method when it
// has one and falls back to fmt's %+v verb.
func (f *Formatter) Write(w io.Writer, data any) error {
	switch f.format {
	case FormatJSON:
		return f.writeJSON(w, data)
	case FormatMsgPack:
		return f.writeMsgPack(w, data)
	default:
		if tw, ok := data.(TextWriter); ok {
			return tw.WriteText(w)
		}
		_, err := fmt.Fprintf(w, "%+v\n", data)
		return err
	}
}

func (f *Formatter) writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func (f *Formatter) writeMsgPack(w io.Writer, data any) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}
