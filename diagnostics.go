package minic

import (
	"fmt"
	"strings"

	"github.com/kuruczgy-subset/minic/ascii"
)

// DiagnosticKind classifies a Diagnostic by severity.
type DiagnosticKind int

const (
	DiagError DiagnosticKind = iota
	DiagWarning
	DiagInfo
)

func (k DiagnosticKind) String() string {
	return [...]string{"error", "warning", "info"}[k]
}

// Diagnostic is one accumulated generator message, anchored to the
// node whose generation produced it.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	At      Range
}

// Diagnostics is the generator's message sink: errors are collected so
// a driver can report everything found in a single pass
// (stop_on_first_error in Config still lets callers opt back into
// abort-on-first behavior).
type Diagnostics struct {
	items []Diagnostic
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Add(kind DiagnosticKind, at Range, format string, args ...any) {
	d.items = append(d.items, Diagnostic{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		At:      at,
	})
}

func (d *Diagnostics) Errorf(at Range, format string, args ...any) {
	d.Add(DiagError, at, format, args...)
}

func (d *Diagnostics) HasErrors() bool {
	for _, it := range d.items {
		if it.Kind == DiagError {
			return true
		}
	}
	return false
}

func (d *Diagnostics) Items() []Diagnostic {
	return d.items
}

// Render formats all accumulated diagnostics, one per line, optionally
// colorized through the ascii theme.
func (d *Diagnostics) Render(color bool) string {
	var b strings.Builder
	theme := ascii.DefaultTheme
	for _, it := range d.items {
		prefix := it.Kind.String()
		line := fmt.Sprintf("%s at %s: %s", prefix, it.At, it.Message)
		if color {
			c := theme.Info
			switch it.Kind {
			case DiagError:
				c = theme.Error
			case DiagWarning:
				c = theme.Warning
			}
			line = ascii.Color(c, "%s", line)
		}
		b.WriteString(line)
		b.WriteRune('\n')
	}
	return b.String()
}
