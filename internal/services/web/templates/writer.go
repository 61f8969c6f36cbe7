package templates

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// validName reports whether s is safe to splice as a tag or attribute name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
		default:
			return false
		}
	}
	return true
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag with a class attribute when class is non-empty.
func (h *htmlWriter) open(tag, class string, attrs ...string) {
	if h.err == nil && !validName(tag) {
		h.err = fmt.Errorf("invalid tag name %q", tag)
		return
	}
	h.raw("<" + tag)
	if class != "" {
		h.attr("class", class)
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		h.attr(attrs[i], attrs[i+1])
	}
	h.raw(">")
}

func (h *htmlWriter) attr(name, value string) {
	if h.err == nil && !validName(name) {
		h.err = fmt.Errorf("invalid attribute name %q", name)
		return
	}
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (h *htmlWriter) close(tag string) {
	if h.err == nil && !validName(tag) {
		h.err = fmt.Errorf("invalid tag name %q", tag)
		return
	}
	h.raw("</" + tag + ">")
}

// element writes a start tag, escaped text and the end tag.
func (h *htmlWriter) element(tag, class, text string) {
	h.open(tag, class)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
