// Package document renders a BuildPlan as the vl_build.json document.
//
// The document has a fixed schema whose key order is part of its contract,
// so it is assembled by hand rather than through encoding/json: objects are
// written member by member in schema order and every string list goes
// through FormatStringList.
package document

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/danieljhkim/vlbuild/internal/planner"
)

const (
	// FileName is the document's name inside the make directory.
	FileName = "vl_build.json"

	// SchemaVersion is the literal written to the "version" key.
	SchemaVersion = "1.0"
)

// Render returns the complete document for plan, newline terminated.
func Render(plan *planner.BuildPlan) []byte {
	macros := FormatStringList(plan.Macros)

	w := &writer{}
	w.beginObject("")
	w.field("version", Quote(SchemaVersion))

	w.beginObject("config")
	w.field("VERILATOR_ROOT", Quote(plan.VerilatorRoot))
	w.endObject()

	w.beginObject("libverilated")
	w.field("mode", Quote(plan.Mode))
	w.field("features", FormatStringList(plan.Features))
	w.field("compile_sources", FormatStringList(plan.SupportSources))
	w.field("compile_macros", macros)
	w.endObject()

	w.beginObject("model")
	w.beginObject("config")
	w.field("threads", strconv.Itoa(plan.Threads))
	w.field("trace", nullableString(plan.Trace))
	w.field("timing", numericBool(plan.Timing))
	w.field("coverage", numericBool(plan.Coverage))
	w.endObject()
	w.field("prefix", Quote(plan.Prefix))
	w.field("compile_sources", FormatStringList(plan.ModelSources))
	w.field("compile_headers", FormatStringList(plan.ModelHeaders))
	w.field("compile_macros", macros)
	w.endObject()

	w.endObject()
	w.buf.WriteByte('\n')
	return w.buf.Bytes()
}

// Write renders plan to out and returns the number of bytes written.
func Write(out io.Writer, plan *planner.BuildPlan) (int, error) {
	return out.Write(Render(plan))
}

// FormatStringList renders items as a single-line JSON array: "[]" when
// empty, otherwise ["a", "b"] with no trailing comma.
func FormatStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = Quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// Quote wraps s in double quotes. Quotes, backslashes and control
// characters are escaped, and bytes that are not valid UTF-8 become
// \ufffd; file names and tags need nothing else.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				b.WriteByte('\\')
				b.WriteByte(c)
			case c < 0x20:
				fmt.Fprintf(&b, `\u%04x`, c)
			default:
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(`\ufffd`)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	b.WriteByte('"')
	return b.String()
}

func nullableString(s string) string {
	if s == "" {
		return "null"
	}
	return Quote(s)
}

func numericBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// writer emits nested objects with two-space indentation.
type writer struct {
	buf bytes.Buffer
	// first[i] is true until object i receives its first member
	first []bool
}

func (w *writer) indent() {
	for range w.first {
		w.buf.WriteString("  ")
	}
}

func (w *writer) member(key string) {
	top := len(w.first) - 1
	if w.first[top] {
		w.first[top] = false
		w.buf.WriteByte('\n')
	} else {
		w.buf.WriteString(",\n")
	}
	w.indent()
	w.buf.WriteString(Quote(key))
	w.buf.WriteString(": ")
}

func (w *writer) beginObject(key string) {
	if len(w.first) > 0 {
		w.member(key)
	}
	w.buf.WriteByte('{')
	w.first = append(w.first, true)
}

func (w *writer) endObject() {
	empty := w.first[len(w.first)-1]
	w.first = w.first[:len(w.first)-1]
	if !empty {
		w.buf.WriteByte('\n')
		w.indent()
	}
	w.buf.WriteByte('}')
}

func (w *writer) field(key, raw string) {
	w.member(key)
	w.buf.WriteString(raw)
}
